package errors

import (
	"fmt"

	"github.com/eaugeas/redblack/logs"
)

const (
	// ErrCodeReadInput is used when the key source cannot be read
	ErrCodeReadInput = 1000 + iota

	// ErrCodeInvalidKey is used when a token of the key source is
	// not a decimal integer
	ErrCodeInvalidKey

	// ErrCodeWriteOutput is used when a traversal cannot be written
	ErrCodeWriteOutput

	// ErrCodeInvalidTree is used when a tree fails validation
	ErrCodeInvalidTree
)

// Error is returned when a key script cannot be processed
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`

	// Cause is the underlying error, if any
	Cause error `json:"-"`
}

// New creates an Error with a formatted description
func New(code int, format string, args ...interface{}) *Error {
	return &Error{ErrorCode: code, Description: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error caused by err
func Wrap(code int, err error, description string) *Error {
	return &Error{ErrorCode: code, Description: description, Cause: err}
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Description + ": " + e.Cause.Error()
	}

	return e.Description
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
	if e.Cause != nil {
		fields.Add("cause", e.Cause.Error())
	}
}
