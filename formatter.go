package pkgerrors

// Attribution: portions of the below code and documentation are modeled
// directly on the github.com/dominikh/go-tools/blob/master/printf
// package, used with the permission available under the software
// license (MIT):
// https://github.com/dominikh/go-tools/blob/master/LICENSE

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MessageFormatter fills a (possibly localized) format template with
// the runtime values captured at the raise site. A returned error (or
// a panic) makes the owning error fall back to its raw template.
type MessageFormatter interface {
	FormatMessage(template string) (string, error)
}

// FormatterCloner is implemented by formatters that own mutable state
// and must be duplicated when an error is copied. Cloning may fail, in
// which case the copy loses its formatter.
type FormatterCloner interface {
	CloneFormatter() (MessageFormatter, error)
}

// FormatterFunc adapts an ordinary function to the MessageFormatter
// interface.
type FormatterFunc func(template string) (string, error)

// FormatMessage calls f(template).
func (f FormatterFunc) FormatMessage(template string) (string, error) { return f(template) }

// Args returns a MessageFormatter that fills the template with
// fmt.Sprintf. The template's verbs are checked against the arguments
// first: missing or unused arguments are reported as an error rather
// than rendered as `%!d(MISSING)` noise.
func Args(args ...interface{}) MessageFormatter {
	return argsFormatter(args)
}

type argsFormatter []interface{}

var _ interface { // Assert interface implementation.
	MessageFormatter
	FormatterCloner
} = argsFormatter(nil)

func (a argsFormatter) FormatMessage(template string) (string, error) {
	verbs, err := parseFormatString(template, len(a))
	if err != nil {
		return "", err
	}
	if err := checkArgsUsed(verbs, len(a)); err != nil {
		return "", err
	}
	return fmt.Sprintf(template, a...), nil
}

func (a argsFormatter) CloneFormatter() (MessageFormatter, error) {
	c := make(argsFormatter, len(a))
	copy(c, a)
	return c, nil
}

// checkArgsUsed reports arguments no verb refers to. Templates using
// explicit argument indexes may legitimately skip some (a translation
// can reorder or drop values), so they are not checked.
func checkArgsUsed(verbs []fmtVerb, numValues int) error {
	used := 0
	for _, v := range verbs {
		if v.value > 0 || v.width > 0 || v.prec > 0 {
			return nil
		}
		used++
		if v.width == -1 {
			used++
		}
		if v.prec == -1 {
			used++
		}
	}
	if used < numValues {
		return fmt.Errorf("invalid format string: %d unused arguments", numValues-used)
	}
	return nil
}

type fmtVerb struct {
	letter rune
	flags  string

	// Which value in the argument list the verb uses:
	//   * -1 denotes the next argument,
	//   * >0 denote explicit arguments,
	//   * 0 denotes that no argument is consumed, ie: %%. This will not be returned.
	value int

	// Similar to above: take into account argument indices used in either
	// place. When a literal will be 0.
	width, prec int

	// The 0-indexed argument this verb is associated with.
	idx int

	raw string
}

// parseFormatString parses f and returns the list of verbs that
// consume an argument.
//
// This may break down when doing some more abstract things, like using
// argument indices with star precisions.
func parseFormatString(f string, numValues int) (verbs []fmtVerb, err error) {
	var nextValueIndex int
	for len(f) > 0 {
		if f[0] == '%' {
			v, n, err := parseVerb(f)
			if err != nil {
				return nil, err
			}
			f = f[n:]
			if v.value != 0 {
				if v.width > numValues {
					return nil, errors.New("invalid format string: not enough arguments")
				}
				if v.prec > numValues {
					return nil, errors.New("invalid format string: not enough arguments")
				}
				if v.value == -1 {
					v.idx = nextValueIndex
					nextValueIndex++
				} else {
					// printf argument index is one-indexed, so we can always subtract 1 here.
					v.idx = v.value - 1
					nextValueIndex = v.value
				}
				if v.idx >= numValues {
					return nil, errors.New("invalid format string: not enough arguments")
				}
				verbs = append(verbs, v)
			}
		} else {
			n := strings.IndexByte(f, '%')
			if n > -1 {
				f = f[n:]
			} else {
				f = ""
			}
		}
	}
	return verbs, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// parseVerb parses the verb at the beginning of f. It returns the verb,
// how much of the input was consumed, and an error, if any.
func parseVerb(f string) (fmtVerb, int, error) {
	if len(f) < 2 {
		return fmtVerb{}, 0, errors.New("invalid format string")
	}
	const (
		flags      = 1
		widthStar  = 3
		widthIndex = 5
		dot        = 6
		precStar   = 8
		precIndex  = 10
		verbIndex  = 11
		verb       = 12
	)

	m := re.FindStringSubmatch(f)
	if m == nil {
		return fmtVerb{}, 0, errors.New("invalid format string")
	}

	v := fmtVerb{
		letter: []rune(m[verb])[0],
		flags:  m[flags],
		raw:    m[0],
	}

	if m[widthStar] != "" {
		if m[widthIndex] != "" {
			v.width = atoi(m[widthIndex])
		} else {
			v.width = -1
		}
	}

	if m[dot] != "" && m[precStar] != "" {
		if m[precIndex] != "" {
			v.prec = atoi(m[precIndex])
		} else {
			v.prec = -1
		}
	}

	if m[verb] == "%" {
		v.value = 0
	} else if m[verbIndex] != "" {
		idx := atoi(m[verbIndex])
		if idx <= 0 || idx > 128 {
			return fmtVerb{}, 0, errors.New("invalid format string: bad argument index")
		}
		v.value = idx
	} else {
		v.value = -1
	}

	return v, len(m[0]), nil
}

const (
	flags             = `([+#0 -]*)`
	verb              = `([a-zA-Z%])`
	index             = `(?:\[([0-9]+)\])`
	star              = `((` + index + `)?\*)`
	width1            = `([0-9]+)`
	width2            = star
	width             = `(?:` + width1 + `|` + width2 + `)`
	precision         = width
	widthAndPrecision = `(?:(?:` + width + `)?(?:(\.)(?:` + precision + `)?)?)`
)

var re = regexp.MustCompile(`^%` + flags + widthAndPrecision + `?` + index + `?` + verb)
