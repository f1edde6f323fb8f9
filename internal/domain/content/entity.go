package content

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// FAQItem represents a FAQ question/answer
type FAQItem struct {
	ID        uuid.UUID `db:"id"`
	Category  string    `db:"category"`
	Question  string    `db:"question"`
	Answer    string    `db:"answer"`
	SortOrder int       `db:"sort_order"`
	IsActive  bool      `db:"is_active"`
}

// Testimonial is a couple's review shown on the landing page
type Testimonial struct {
	ID        uuid.UUID      `db:"id"`
	Name      string         `db:"name"`
	Quote     string         `db:"quote"`
	Rating    int            `db:"rating"`
	EventDate sql.NullString `db:"event_date"`
	ImageURL  sql.NullString `db:"image_url"`
	SortOrder int            `db:"sort_order"`
	CreatedAt time.Time      `db:"created_at"`
}
