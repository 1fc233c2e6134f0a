//go:build !unix

package pkgerrors

import (
	"strconv"
	"syscall"
)

// platformErrorMessage returns the system message for an error code.
// Go spells codes it has no text for "errno <n>", which is reported as
// a failed lookup.
func platformErrorMessage(code int) (string, error) {
	msg := syscall.Errno(code).Error()
	if msg == "" || msg == "errno "+strconv.Itoa(code) {
		return "", unknownErrorCode(code)
	}
	return capitalize(msg), nil
}
