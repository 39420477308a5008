package posit

import "fmt"

// ArgumentError reports a programming error in the arguments passed to a
// core constructor: an ES too wide for the posit, a bit pattern that does
// not fit in N bits, or an exponent that does not fit in ES bits. These
// are surfaced immediately and never retried — see spec §7.
type ArgumentError struct {
	msg string
}

func (e *ArgumentError) Error() string { return e.msg }

func argErrorf(format string, args ...any) error {
	return &ArgumentError{msg: fmt.Sprintf(format, args...)}
}
