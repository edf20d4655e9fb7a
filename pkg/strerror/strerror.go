// Package strerror renders OS error numbers as human-readable messages, the
// way strerror(3) does. The table consulted is chosen per platform at build
// time.
package strerror

import "fmt"

// MaxMessageLen bounds the rendered message. Messages at or beyond the
// bound fail resolution instead of being truncated.
const MaxMessageLen = 128

// ResolutionError reports an error number the platform table has no
// terminated message for.
type ResolutionError struct {
	Code int
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("strerror: no message for error code %d", e.Code)
}

// Lookup returns the OS message for an error number. Error numbers are only
// meaningful immediately after the failing call that produced them; in Go
// the syscall wrappers return them as error values, so callers pass the
// value they already hold rather than reading thread-local state.
func Lookup(code int) (string, error) {
	if code <= 0 {
		return "", &ResolutionError{Code: code}
	}
	msg := message(code)
	if msg == "" || len(msg) >= MaxMessageLen {
		return "", &ResolutionError{Code: code}
	}
	return msg, nil
}

// Name returns the symbolic name for an error number (e.g. "ENOENT" for 2),
// or "" when the platform table has none.
func Name(code int) string {
	if code <= 0 {
		return ""
	}
	return name(code)
}
