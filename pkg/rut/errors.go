package rut

import "errors"

// ErrInvalidFormat is the only failure kind this package produces. Every
// returned error matches it with errors.Is.
var ErrInvalidFormat = errors.New("invalid rut format")

// FormatError describes why an input could not be used as an identifier.
// Input holds the offending raw value when one is available.
type FormatError struct {
	Message string
	Input   string
}

func (e *FormatError) Error() string {
	if e.Input == "" {
		return e.Message
	}
	return e.Message + " RUT: '" + e.Input + "'"
}

// Is reports whether target is ErrInvalidFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func invalidFormat(message, input string) error {
	return &FormatError{Message: message, Input: input}
}
