package message

import "errors"

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrInvalidCounter  = errors.New("hearts cannot be negative")
)
