package pkgerrors

// Kind classifies an error by a coarse domain and a name within it, so
// callers can dispatch on errors without knowing their concrete type.
// The zero Kind marks an uncategorized error.
type Kind struct {
	Domain string
	Name   string
}

// Kinds used across the toolkit.
var (
	KindError       = Kind{Domain: "pkgerrors", Name: "Error"}
	KindRuntime     = Kind{Domain: "pkgerrors", Name: "RuntimeError"}
	KindLogic       = Kind{Domain: "pkgerrors", Name: "LogicError"}
	KindSystem      = Kind{Domain: "pkgerrors", Name: "SystemError"}
	KindTransaction = Kind{Domain: "transaction", Name: "TransactionError"}
	KindRepository  = Kind{Domain: "repo", Name: "RepoError"}
	KindSolver      = Kind{Domain: "solver", Name: "SolverError"}
	KindRPM         = Kind{Domain: "rpm", Name: "RpmError"}
	KindConfig      = Kind{Domain: "conf", Name: "OptionError"}
)

// IsZero reports whether k is the uncategorized Kind.
func (k Kind) IsZero() bool { return k.Domain == "" && k.Name == "" }

// String returns "domain::name".
func (k Kind) String() string {
	if k.IsZero() {
		return ""
	}
	return k.Domain + "::" + k.Name
}

// New returns an error of this kind. Options other than WithKind are
// honored.
func (k Kind) New(template string, opts ...Option) *Error {
	e := NewError(template, opts...)
	e.kind = k
	return e
}

// Wrap returns an error of this kind, with template filled by args,
// caused by err.
func (k Kind) Wrap(err error, template string, args ...interface{}) *Error {
	if len(args) == 0 {
		return k.New(template, WithCause(err))
	}
	return k.New(template, WithCause(err), WithArgs(args...))
}

// classified is implemented by every error of this package.
type classified interface {
	Kind() Kind
}

// describer is implemented by errors whose Error method is backed by a
// memoized description.
type describer interface {
	Description() string
}

// KindOf returns the kind of the outermost categorized error in err's
// chain, or the zero Kind.
func KindOf(err error) Kind {
	for ; !isNil(err); err = Unwrap(err) {
		if c, ok := err.(classified); ok && !c.Kind().IsZero() {
			return c.Kind()
		}
	}
	return Kind{}
}

// IsKind reports whether any error in err's chain is of the given kind.
func IsKind(err error, kind Kind) bool {
	if kind.IsZero() {
		return false
	}
	for ; !isNil(err); err = Unwrap(err) {
		if c, ok := err.(classified); ok && c.Kind() == kind {
			return true
		}
	}
	return false
}
