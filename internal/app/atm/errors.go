package atm

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrPinRequired      = errors.New("invalid PIN for high amount")
	ErrUnexpectedResult = errors.New("unexpected result")
)
