package pkgerrors

import "fmt"

// Audience tells who broke the contract an AssertionError reports. It
// only changes the label used in the description.
type Audience uint8

const (
	// Internal marks a broken invariant inside the toolkit: a defect.
	Internal Audience = iota
	// Public marks misuse of a public interface by its caller.
	Public
)

func (a Audience) String() string {
	if a == Public {
		return "public"
	}
	return "internal"
}

// Sentinels matched by AssertionError.Is.
var (
	ErrAssertion     = New("assertion failed")
	ErrUserAssertion = New("API assertion failed")
)

// AssertionError reports a contract violation at a known source
// location, optionally naming the condition that did not hold.
type AssertionError struct {
	audience  Audience
	condition string
	location  SourceLocation
	message   *Error
	cause     error
	desc      memo
}

var _ interface { // Assert interface implementation.
	error
	classified
	describer
	Unwrap() error
	Is(error) bool
	fmt.Formatter
} = (*AssertionError)(nil)

// NewAssertionError returns an Internal AssertionError. An empty
// condition means the failed condition is not known.
func NewAssertionError(condition string, loc SourceLocation, template string, opts ...Option) *AssertionError {
	return newAssertionError(Internal, condition, loc, template, opts)
}

// NewUserAssertionError returns a Public AssertionError. An empty
// condition means the failed condition is not known.
func NewUserAssertionError(condition string, loc SourceLocation, template string, opts ...Option) *AssertionError {
	return newAssertionError(Public, condition, loc, template, opts)
}

func newAssertionError(audience Audience, condition string, loc SourceLocation, template string, opts []Option) *AssertionError {
	o := buildOptions(opts)
	return &AssertionError{
		audience:  audience,
		condition: condition,
		location:  loc,
		message:   &Error{template: template, formatter: o.formatter},
		cause:     o.cause,
	}
}

// Assert panics with an Internal AssertionError located at its caller
// when ok is false. It is meant for invariants whose violation is a
// defect in the toolkit.
func Assert(ok bool, condition string, template string, args ...interface{}) {
	if ok {
		return
	}
	panic(newAssertionError(Internal, condition, locationAt(3), template, argsOption(args)))
}

// UserAssert returns a Public AssertionError located at its caller when
// ok is false, and nil otherwise. It is meant for validating the
// arguments of public entry points.
func UserAssert(ok bool, condition string, template string, args ...interface{}) error {
	if ok {
		return nil
	}
	return newAssertionError(Public, condition, locationAt(3), template, argsOption(args))
}

func argsOption(args []interface{}) []Option {
	if len(args) == 0 {
		return nil
	}
	return []Option{WithArgs(args...)}
}

func (e *AssertionError) Error() string { return e.Description() }

// Description returns
//
//	<file>:<line>: <function>: Assertion '<condition>' failed: <message>
//
// with "API Assertion" for the Public audience, and without the quoted
// condition when it is unknown. If composing the prefix fails the
// message alone is returned.
func (e *AssertionError) Description() string {
	return e.desc.get(e.describe).text
}

// composeAssertionText joins the parts of an AssertionError
// description. It is a variable so tests can simulate a composition
// failure.
var composeAssertionText = func(loc SourceLocation, label, condition, message string) string {
	text := loc.String()
	if condition != "" {
		text += ": " + label + " '" + condition + "' failed: "
	} else {
		text += ": " + label + " failed: "
	}
	return text + message
}

func (e *AssertionError) describe() (d description) {
	defer func() {
		if r := recover(); r != nil {
			d = description{text: e.message.Description(), state: Fallback}
		}
	}()

	label := "Assertion"
	if e.audience == Public {
		label = "API Assertion"
	}
	text := composeAssertionText(e.location, label, e.condition, e.message.Description())
	return description{text: text, state: e.message.State()}
}

// State reports how the description was (or was not yet) obtained. It
// follows the state of the message.
func (e *AssertionError) State() DescriptionState { return e.desc.state() }

// Audience reports whether the error is Internal or Public.
func (e *AssertionError) Audience() Audience { return e.audience }

// Condition returns the text of the failed condition, or "".
func (e *AssertionError) Condition() string { return e.condition }

// Location returns where the assertion was raised.
func (e *AssertionError) Location() SourceLocation { return e.location }

// Message returns the message part of the description, without the
// location prefix.
func (e *AssertionError) Message() string { return e.message.Description() }

// Kind returns the zero Kind: assertion errors are not categorized and
// render with their description alone.
func (e *AssertionError) Kind() Kind { return Kind{} }

func (e *AssertionError) Unwrap() error { return e.cause }

// Is matches ErrAssertion for Internal and ErrUserAssertion for Public
// assertion errors.
func (e *AssertionError) Is(target error) bool {
	if e.audience == Public {
		return target == ErrUserAssertion
	}
	return target == ErrAssertion
}

// Copy duplicates the error, see Error.Copy for how the message
// formatter is handled.
func (e *AssertionError) Copy() *AssertionError {
	c := &AssertionError{
		audience:  e.audience,
		condition: e.condition,
		location:  e.location,
		message:   e.message.Copy(),
		cause:     e.cause,
	}
	if c.message.formatter != nil || e.message.formatter == nil {
		c.desc.copyFrom(&e.desc)
	}
	return c
}

func (e *AssertionError) Format(s fmt.State, verb rune) {
	formatDiagnostic(s, verb, e, "&pkgerrors.AssertionError")
}
