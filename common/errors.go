package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorInvalidInput is returned when a series cannot be classified:
	// non-positive class count, fewer values than classes or non-finite values.
	ErrorInvalidInput = errors.New("invalid input")

	ErrorOutOfRange     = errors.New("value out of breaks range")
	ErrorColumnNotFound = errors.New("column not found")
)
