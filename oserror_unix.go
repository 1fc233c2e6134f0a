//go:build unix

package pkgerrors

import "golang.org/x/sys/unix"

// platformErrorMessage returns the strerror text for an errno value.
// Codes the platform has no name for are reported as a failed lookup.
func platformErrorMessage(code int) (string, error) {
	errno := unix.Errno(code)
	if unix.ErrnoName(errno) == "" {
		return "", unknownErrorCode(code)
	}
	msg := errno.Error()
	if msg == "" {
		return "", unknownErrorCode(code)
	}
	return capitalize(msg), nil
}
