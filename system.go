package pkgerrors

import (
	"fmt"
	"strconv"
	"syscall"
)

// systemDescription is the default text of a SystemError that could
// not be described otherwise.
const systemDescription = "System error"

// errorMessage resolves the platform's message for an error code. It
// is a variable so tests can simulate lookup failures.
var errorMessage = platformErrorMessage

// SystemError wraps an error code returned by the operating system,
// optionally prefixed by a message describing what was being done.
type SystemError struct {
	code        int
	userMessage *Error
	cause       error
	desc        memo
}

var _ interface { // Assert interface implementation.
	error
	classified
	describer
	Unwrap() error
	Is(error) bool
	fmt.Formatter
} = (*SystemError)(nil)

// NewSystemError returns an error for the raw platform error code. Only
// the WithCause option is meaningful.
func NewSystemError(code int, opts ...Option) *SystemError {
	o := buildOptions(opts)
	return &SystemError{code: code, cause: o.cause}
}

// SystemErrorFrom returns a SystemError for the syscall.Errno found in
// err's chain, with err as its cause. It returns nil when there is no
// Errno to report.
func SystemErrorFrom(err error) *SystemError {
	var errno syscall.Errno
	if !As(err, &errno) {
		return nil
	}
	return &SystemError{code: int(errno), cause: err}
}

// WithUserMessage returns a copy of the error whose description is
// prefixed with template, filled printf-style with args.
func (e *SystemError) WithUserMessage(template string, args ...interface{}) *SystemError {
	return &SystemError{
		code:        e.code,
		userMessage: NewError(template, argsOption(args)...),
		cause:       e.cause,
	}
}

func (e *SystemError) Error() string { return e.Description() }

// Description returns "(<code>) - <os message>", prefixed with
// "<user message>: " when one was attached. A failed platform lookup
// leaves the OS message empty.
func (e *SystemError) Description() string {
	return e.desc.get(e.describe).text
}

// composeSystemText joins the parts of a SystemError description. It
// is a variable so tests can simulate a composition failure.
var composeSystemText = func(userMessage string, code int, osMessage string) string {
	text := "(" + strconv.Itoa(code) + ") - " + osMessage
	if userMessage != "" {
		text = userMessage + ": " + text
	}
	return text
}

func (e *SystemError) describe() (d description) {
	osMessage := e.ErrorMessage()
	defer func() {
		if r := recover(); r == nil {
			return
		}
		switch {
		case e.userMessage != nil:
			text, err := translate(e.userMessage.template)
			if err != nil || text == "" {
				text = e.userMessage.template
			}
			d = description{text: nonEmpty(text), state: Fallback}
		case osMessage != "":
			d = description{text: osMessage, state: Fallback}
		default:
			d = description{text: systemDescription, state: Fallback}
		}
	}()

	state := Formatted
	if osMessage == "" {
		state = Fallback
	}
	var user string
	if e.userMessage != nil {
		user = e.userMessage.Description()
		if e.userMessage.State() == Fallback {
			state = Fallback
		}
	}
	return description{text: composeSystemText(user, e.code, osMessage), state: state}
}

// State reports how the description was (or was not yet) obtained. A
// description missing the OS message, or whose user message fell back
// to its template, is a Fallback.
func (e *SystemError) State() DescriptionState { return e.desc.state() }

// ErrorMessage returns the operating system's message for the error
// code alone, or "" when it cannot be resolved.
func (e *SystemError) ErrorMessage() (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = ""
		}
	}()
	msg, err := errorMessage(e.code)
	if err != nil {
		return ""
	}
	return msg
}

// Code returns the raw platform error code.
func (e *SystemError) Code() int { return e.code }

// UserMessage returns the attached message, or "".
func (e *SystemError) UserMessage() string {
	if e.userMessage == nil {
		return ""
	}
	return e.userMessage.Description()
}

// Kind returns KindSystem.
func (e *SystemError) Kind() Kind { return KindSystem }

func (e *SystemError) Unwrap() error { return e.cause }

// Is matches the syscall.Errno with the same code, so that
//
//	errors.Is(err, syscall.ENOENT)
//
// holds for a SystemError raised for ENOENT.
func (e *SystemError) Is(target error) bool {
	errno, ok := target.(syscall.Errno)
	return ok && int(errno) == e.code
}

// Copy duplicates the error.
func (e *SystemError) Copy() *SystemError {
	c := &SystemError{code: e.code, cause: e.cause}
	if e.userMessage != nil {
		c.userMessage = e.userMessage.Copy()
		if c.userMessage.formatter == nil && e.userMessage.formatter != nil {
			return c
		}
	}
	c.desc.copyFrom(&e.desc)
	return c
}

func (e *SystemError) Format(s fmt.State, verb rune) {
	formatDiagnostic(s, verb, e, "&pkgerrors.SystemError")
}
