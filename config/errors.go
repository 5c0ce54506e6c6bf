package config

import "errors"

// ErrAlreadyParsed is returned when Parse is called more than once
var ErrAlreadyParsed = errors.New("configuration already parsed")

// ErrParseFlags is returned when the command line flags cannot
// be parsed
type ErrParseFlags struct {
	Cause error
}

// Error implementation of error for ErrParseFlags
func (e ErrParseFlags) Error() string {
	return "failed to parse flags: " + e.Cause.Error()
}

func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}
