//go:build windows

package strerror

import "syscall"

// message asks the Windows message table via syscall.Errno, which maps the
// POSIX-compatible range and falls back to FormatMessage beyond it.
func message(code int) string {
	return syscall.Errno(code).Error()
}

// Symbolic errno names are a Unix notion; Windows has none to offer.
func name(code int) string {
	return ""
}
