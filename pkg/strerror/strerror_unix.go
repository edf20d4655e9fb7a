//go:build unix

package strerror

import "golang.org/x/sys/unix"

// message consults the errno table compiled into x/sys/unix for this
// GOOS/GOARCH. Codes outside the table yield "" rather than the package's
// "errno N" fallback text.
func message(code int) string {
	e := unix.Errno(code)
	if unix.ErrnoName(e) == "" {
		return ""
	}
	return e.Error()
}

func name(code int) string {
	return unix.ErrnoName(unix.Errno(code))
}
