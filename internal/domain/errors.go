package domain

import "fmt"

// DataUnavailableError indicates the launch dataset could not be loaded.
// It is fatal at startup: the server does not start without its table.
type DataUnavailableError struct {
	Message string
}

func (e *DataUnavailableError) Error() string { return e.Message }

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrDataUnavailable creates a DataUnavailableError with a formatted message.
func ErrDataUnavailable(format string, args ...interface{}) *DataUnavailableError {
	return &DataUnavailableError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
