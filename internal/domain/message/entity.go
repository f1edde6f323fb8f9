package message

import "time"

// Message is a guestbook entry left on an event
type Message struct {
	ID        string    `db:"id"`
	EventID   string    `db:"event_id"`
	GuestName string    `db:"guest_name"`
	Message   string    `db:"message"`
	Hearts    int       `db:"hearts"`
	CreatedAt time.Time `db:"created_at"`
}
