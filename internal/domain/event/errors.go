package event

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrReservedEvent     = errors.New("reserved event cannot be modified")
	ErrInvalidAccessCode = errors.New("invalid access code")
)
