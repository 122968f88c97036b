// Package flaterrors joins errors into a single-line error that still
// supports errors.Is and errors.As on every joined error.
package flaterrors

import "strings"

// Join returns an error that wraps the given errors. Nil errors are
// discarded; Join returns nil if every error is nil.
//
// Unlike errors.Join, the message is kept on a single line with each
// error separated by ": ".
func Join(errs ...error) error {
	n := 0
	for _, err := range errs {
		if err != nil {
			n++
		}
	}

	if n == 0 {
		return nil
	}

	out := &joinError{errs: make([]error, 0, n)}
	for _, err := range errs {
		if err != nil {
			out.errs = append(out.errs, err)
		}
	}

	return out
}

type joinError struct {
	errs []error
}

func (e *joinError) Error() string {
	msgs := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		msgs = append(msgs, err.Error())
	}

	return strings.Join(msgs, ": ")
}

func (e *joinError) Unwrap() []error {
	return e.errs
}
