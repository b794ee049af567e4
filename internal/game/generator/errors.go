package generator

import "errors"

var (
	// ErrUnknownClass is returned when an explicit class name matches no loaded class.
	ErrUnknownClass = errors.New("unknown class")
	// ErrUnknownBackground is returned when an explicit background name matches no loaded background.
	ErrUnknownBackground = errors.New("unknown background")
)
