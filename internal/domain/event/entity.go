package event

import "time"

// HomepageEventID is the reserved bucket holding marketing gallery photos.
// It is never listed, counted or editable as a regular event.
const HomepageEventID = "homepage"

// DefaultAccessCode is the column default for rows created outside the API
const DefaultAccessCode = "GUEST"

// Event is a wedding or other occasion guests upload photos to
type Event struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Date          string    `db:"date"` // YYYY-MM-DD
	AccessCode    string    `db:"access_code"`
	IsPremium     bool      `db:"is_premium"`
	QRCode        string    `db:"qr_code"`
	ShareableLink string    `db:"shareable_link"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// IsReserved reports whether the row is the homepage bucket
func (e *Event) IsReserved() bool {
	return e.ID == HomepageEventID
}
