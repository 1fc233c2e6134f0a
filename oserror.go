package pkgerrors

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

func unknownErrorCode(code int) error {
	return fmt.Errorf("no system message for error code %d", code)
}

// capitalize gives the lower-cased Go rendering of a C library message
// its capital back: "No such file or directory".
func capitalize(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
