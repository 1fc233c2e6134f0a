package pkgerrors

import (
	"fmt"
	"io"

	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("pkgerrors")

// genericDescription is returned when there is nothing better to say:
// the template is empty and could not be formatted.
const genericDescription = "unspecified error"

// Option configures an error during construction.
type Option func(*options)

type options struct {
	formatter MessageFormatter
	kind      Kind
	cause     error
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithFormatter sets the formatter that fills the error's template.
func WithFormatter(f MessageFormatter) Option { return func(o *options) { o.formatter = f } }

// WithArgs fills the error's template printf-style with args. It is
// shorthand for WithFormatter(Args(args...)).
func WithArgs(args ...interface{}) Option { return WithFormatter(Args(args...)) }

// WithKind classifies the error under the given domain and name.
func WithKind(kind Kind) Option { return func(o *options) { o.kind = kind } }

// WithCause records the error that was being handled when this one was
// raised. It is returned by Unwrap.
func WithCause(cause error) Option { return func(o *options) { o.cause = cause } }

// Error is the root of the error model: a translatable format template,
// an optional formatter holding the runtime values, an optional
// domain/name classification and an optional cause.
//
// The description is computed on first use and memoized. Most errors
// are only matched by kind and discarded, so nothing is formatted
// until somebody asks.
type Error struct {
	template  string
	formatter MessageFormatter
	kind      Kind
	cause     error
	desc      memo
}

var _ interface { // Assert interface implementation.
	error
	classified
	describer
	Unwrap() error
	fmt.Formatter
} = (*Error)(nil)

// NewError returns an error described by template. Without a formatter
// the (localized) template is the final text.
func NewError(template string, opts ...Option) *Error {
	o := buildOptions(opts)
	return &Error{
		template:  template,
		formatter: o.formatter,
		kind:      o.kind,
		cause:     o.cause,
	}
}

// Errorf returns an uncategorized error whose template is filled with
// args.
func Errorf(template string, args ...interface{}) *Error {
	return NewError(template, WithArgs(args...))
}

func (e *Error) Error() string { return e.Description() }

// Description returns the localized and formatted text of the error.
// It never panics and never returns an empty string: when translation
// or formatting fails the untranslated template is returned instead.
func (e *Error) Description() string {
	return e.desc.get(e.describe).text
}

// State reports how the description was (or was not yet) obtained.
func (e *Error) State() DescriptionState { return e.desc.state() }

func (e *Error) describe() (d description) {
	defer func() {
		if r := recover(); r != nil {
			d = e.fallback(fmt.Errorf("panic: %v", r))
		}
	}()

	localized, err := translate(e.template)
	if err != nil {
		return e.fallback(err)
	}
	if e.formatter == nil {
		return e.settle(localized)
	}
	text, err := e.formatter.FormatMessage(localized)
	if err != nil {
		return e.fallback(err)
	}
	return e.settle(text)
}

func (e *Error) settle(text string) description {
	if text == "" {
		return description{text: nonEmpty(e.template), state: Fallback}
	}
	return description{text: text, state: Formatted}
}

func (e *Error) fallback(cause error) (d description) {
	d = description{text: nonEmpty(e.template), state: Fallback}
	defer func() { _ = recover() }()
	logger.Debugf("cannot format %q: %v", e.template, cause)
	return d
}

func nonEmpty(text string) string {
	if text == "" {
		return genericDescription
	}
	return text
}

// Template returns the untranslated format template.
func (e *Error) Template() string { return e.template }

// Kind returns the error's classification; the zero Kind when the
// error is uncategorized.
func (e *Error) Kind() Kind { return e.kind }

// DomainName returns the classification domain, or "".
func (e *Error) DomainName() string { return e.kind.Domain }

// Name returns the classification name, or "".
func (e *Error) Name() string { return e.kind.Name }

func (e *Error) Unwrap() error { return e.cause }

// Copy duplicates the error. Formatters implementing FormatterCloner
// are cloned; when cloning fails the copy is degraded: it has no
// formatter, so it describes itself with the raw template. Copy never
// panics.
func (e *Error) Copy() *Error {
	c := &Error{
		template: e.template,
		kind:     e.kind,
		cause:    e.cause,
	}
	if e.formatter == nil {
		c.desc.copyFrom(&e.desc)
		return c
	}
	if f, ok := cloneFormatter(e.formatter); ok {
		c.formatter = f
		c.desc.copyFrom(&e.desc)
		return c
	}
	func() {
		defer func() { _ = recover() }()
		logger.Debugf("copy of %q lost its formatter", e.template)
	}()
	return c
}

func cloneFormatter(f MessageFormatter) (clone MessageFormatter, ok bool) {
	cl, isCloner := f.(FormatterCloner)
	if !isCloner {
		return f, true
	}
	defer func() {
		if r := recover(); r != nil {
			clone, ok = nil, false
		}
	}()
	clone, err := cl.CloneFormatter()
	if err != nil || clone == nil {
		return nil, false
	}
	return clone, true
}

func (e *Error) Format(s fmt.State, verb rune) {
	formatDiagnostic(s, verb, e, "&pkgerrors.Error")
}

// formatDiagnostic implements fmt.Formatter for all the error types of
// this package: "%+v" renders the whole chain.
func formatDiagnostic(s fmt.State, verb rune, err error, typeName string) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, FormatChain(err, true))
			return
		}
		if s.Flag('#') {
			_, _ = fmt.Fprintf(s, "%s{%q}", typeName, err.Error())
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, err.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", err.Error())
	default:
		// empty
	}
}
