package inquiry

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Inquiry is a contact-form submission from the landing page
type Inquiry struct {
	ID        uuid.UUID      `db:"id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Subject   string         `db:"subject"`
	Message   string         `db:"message"`
	IPAddress sql.NullString `db:"ip_address"`
	UserAgent sql.NullString `db:"user_agent"`
	HandledAt sql.NullTime   `db:"handled_at"`
	HandledBy uuid.NullUUID  `db:"handled_by"`
	CreatedAt time.Time      `db:"created_at"`
}

// IsHandled reports whether the studio has followed up
func (i *Inquiry) IsHandled() bool {
	return i.HandledAt.Valid
}

// Status filters for the admin list
const (
	StatusOpen    = "open"
	StatusHandled = "handled"
)
