package inquiry

import "errors"

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrInvalidStatus   = errors.New("status must be open or handled")
)
