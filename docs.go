// Package pkgerrors is the error model of a package management
// toolkit. It works with the standard library's error wrapping
// (https://go.dev/blog/go1.13-errors) and re-exports New, Is, As and
// Unwrap so that callers don't need to import "errors" as well.
//
// # Describing errors
//
// Every error raised by the toolkit is built from a format template
// and, optionally, the values filling it:
//
//	err := pkgerrors.NewError("Cannot open %s", pkgerrors.WithArgs(path))
//
// Nothing is formatted when the error is raised. The description is
// computed the first time Error (or Description) is called and then
// memoized: most errors are matched by kind and discarded, and the
// template must be localized before it is filled.
//
// Describing an error never panics and never returns an empty string.
// If the template cannot be translated or filled (a missing argument,
// a failing formatter, a panic) the untranslated template is used
// instead, and the failure is logged at DEBUG level. State tells which
// of the two happened.
//
// # Kinds
//
// Errors are classified by a Kind: a coarse domain and a name within
// it. Callers dispatch on kinds rather than concrete types:
//
//	if pkgerrors.IsKind(err, pkgerrors.KindRepository) {
//	    // ...
//	}
//
// Kind.New and Kind.Wrap are the usual way to raise a classified
// error; Wrap records the error being handled as the cause.
//
// # Assertions and system errors
//
// AssertionError reports a broken contract, internal (a bug in the
// toolkit, raised by Assert as a panic) or public (a misuse by the
// caller, returned by UserAssert). Its description starts with the
// source location of the check:
//
//	repo.go:88: addRepo: API Assertion 'id != ""' failed: repository id must not be empty
//
// SystemError wraps an error code returned by the operating system,
// optionally prefixed with what was being done:
//
//	opening /etc/dnf/dnf.conf: (2) - No such file or directory
//
// # Rendering chains
//
// FormatChain renders an error and all of its causes, one per line,
// each level indented by one more space. The "%+v" verb of every error
// type in this package does the same:
//
//	fmt.Printf("%+v", err)
//
//	transaction::TransactionError: Transaction could not be prepared
//	 repo::RepoError: Cannot load repository updates
//	  conf::OptionError: Option "baseurl" is not set
//
// # Localization
//
// Templates are their own translation keys. SetTranslator installs the
// Translator used to look them up; package localize provides one
// backed by golang.org/x/text message catalogs.
package pkgerrors
