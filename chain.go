package pkgerrors

import (
	"fmt"
	"strings"
)

// FormatChain renders err and every error it wraps, outermost first,
// one line per error. Each line is indented by one space per level and
// ends with a newline:
//
//	transaction::TransactionError: cannot apply transaction
//	 pkgerrors::SystemError: writing rpmdb: (28) - No space left on device
//
// Categorized errors are prefixed with "domain::name: " when withDomain
// is set and "name: " otherwise; other errors print their description
// alone. FormatChain never panics: an error whose Error method panics
// is printed as a placeholder.
//
// Chains are walked through Unwrap() error. Errors built by this
// package cannot form cycles, so no cycle detection is done. Errors
// wrapping several causes (errors.Join) are not descended into: they
// print as one level, with the line breaks of their text replaced by
// spaces so every level stays on one line.
func FormatChain(err error, withDomain bool) string {
	var b strings.Builder
	for depth := 0; !isNil(err); depth++ {
		b.WriteString(strings.Repeat(" ", depth))
		writeLevel(&b, err, withDomain)
		b.WriteByte('\n')
		err = unwrapSafely(err)
	}
	return b.String()
}

func writeLevel(b *strings.Builder, err error, withDomain bool) {
	if c, ok := err.(classified); ok {
		if kind := kindSafely(c); !kind.IsZero() {
			if withDomain {
				b.WriteString(kind.Domain)
				b.WriteString("::")
			}
			b.WriteString(kind.Name)
			b.WriteString(": ")
		}
	}
	b.WriteString(strings.ReplaceAll(describe(err), "\n", " "))
}

// describe returns the description of any error, recovering from
// panics in foreign Error implementations.
func describe(err error) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = fmt.Sprintf("%%!v(PANIC=Error method: %v)", r)
		}
	}()
	if d, ok := err.(describer); ok {
		return d.Description()
	}
	return err.Error()
}

func kindSafely(c classified) (kind Kind) {
	defer func() {
		if r := recover(); r != nil {
			kind = Kind{}
		}
	}()
	return c.Kind()
}

func unwrapSafely(err error) (cause error) {
	defer func() {
		if r := recover(); r != nil {
			cause = nil
		}
	}()
	return Unwrap(err)
}
