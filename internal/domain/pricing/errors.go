package pricing

import "errors"

var (
	ErrNoDocument    = errors.New("no pricing document uploaded")
	ErrDuplicatePlan = errors.New("plan names must be unique")
	ErrMissingFile   = errors.New("pricing document is required")
)
