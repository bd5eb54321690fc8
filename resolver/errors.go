package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownShorthand is the kind of a resolution failure for an input
	// without the 0x prefix that is not in the token table.
	ErrUnknownShorthand = errors.New("unknown token shorthand")
	// ErrMalformedAddress is the kind of a resolution failure for an input
	// with the 0x prefix that is not 20 bytes of hex.
	ErrMalformedAddress = errors.New("malformed address")
)

// ResolutionError is returned by Resolve. Match its kind with errors.Is.
type ResolutionError struct {
	Input       string
	Kind        error
	Suggestions []string
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("%s: %q", e.Kind, e.Input)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *ResolutionError) Unwrap() error {
	return e.Kind
}
