package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarn
	SeverityError
	SeverityCritical
)

// StyledText pairs a plain string with a Severity. It marshals to json as
// the plain string.
type StyledText struct {
	Text     string
	Severity Severity
}

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is all the output a command produces. Results go to the output writer,
// progress goes to the status writer so piping a command only captures its
// results.
//
// Production code uses TerminalUI, tests use RecordingUI.
type UI interface {
	// Style returns t coloured according to its Severity, or the plain text
	// when colours are disabled.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Error does not exit, callers decide what to do next.
	Error(format string, args ...any)
	// Critical is for the headline result of a command, rendered bold.
	Critical(format string, args ...any)

	// Section writes a separator centred around title.
	Section(title string)

	// KeyValue renders label/value pairs with values aligned.
	KeyValue(rows [][2]string)

	// Table renders a bordered table. No header row is drawn when headers
	// is empty.
	Table(headers []string, rows [][]string)

	// Spinner shows msg with an animation on the status writer until the
	// returned stop function is called.
	//
	//   stop := u.Spinner("Querying router...")
	//   defer stop()
	Spinner(msg string) func()

	// Indent returns a child UI one level deeper sharing the same writers.
	Indent() UI

	// Writer returns the output writer, prefixing every line with the
	// current indentation.
	Writer() io.Writer
}
