package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Plan is a package shown on the pricing page
type Plan struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Price       string         `db:"price"`        // display price, e.g. "299K"
	PriceAmount int64          `db:"price_amount"` // in IDR
	Features    pq.StringArray `db:"features"`
	IsPopular   bool           `db:"is_popular"`
	SortOrder   int            `db:"sort_order"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// Document is an uploaded pricing PDF. The newest one is current.
type Document struct {
	ID           uuid.UUID     `db:"id"`
	Filename     string        `db:"filename"` // storage key
	OriginalName string        `db:"original_name"`
	URL          string        `db:"url"`
	SizeBytes    int64         `db:"size_bytes"`
	UploadedBy   uuid.NullUUID `db:"uploaded_by"`
	UploadedAt   time.Time     `db:"uploaded_at"`
}

// MaxDocumentSize caps pricing PDF uploads (10 MB)
const MaxDocumentSize int64 = 10 * 1024 * 1024
