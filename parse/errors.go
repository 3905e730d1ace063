package parse

import "fmt"

// ErrorKind classifies decode failures.
type ErrorKind uint8

const (
	// Incomplete means the line terminator was never found. More input
	// could still complete the line; buffering and retrying is the
	// caller's decision.
	Incomplete ErrorKind = iota + 1
	// Malformed means the input can never form a valid message no
	// matter how many bytes follow it.
	Malformed
)

// ParseError describes why a line failed to decode.
type ParseError struct {
	// Kind is the failure class.
	Kind ErrorKind
	// Msg is a human readable description.
	Msg string
	// Offset is the byte position the decoder stopped at.
	Offset int
	// Fragment is the offending region of the line, when one exists.
	Fragment string
}

// Error satisfies the error interface for ParseError.
func (p *ParseError) Error() string {
	if len(p.Fragment) > 0 {
		return fmt.Sprintf("%s at byte %d: %q", p.Msg, p.Offset, p.Fragment)
	}
	return fmt.Sprintf("%s at byte %d", p.Msg, p.Offset)
}

// IsIncomplete reports whether err is a ParseError of kind Incomplete.
func IsIncomplete(err error) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Kind == Incomplete
}

// IsMalformed reports whether err is a ParseError of kind Malformed.
func IsMalformed(err error) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Kind == Malformed
}
