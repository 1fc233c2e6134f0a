package pkgerrors

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/secureworks/pkgerrors/internal/testutils"
)

// stubErrorMessage replaces the platform message lookup for the
// duration of the test.
func stubErrorMessage(t *testing.T, fn func(code int) (string, error)) {
	t.Helper()
	prev := errorMessage
	errorMessage = fn
	t.Cleanup(func() { errorMessage = prev })
}

func noSuchFile(code int) (string, error) {
	if code == 2 {
		return "No such file or directory", nil
	}
	return "", fmt.Errorf("unknown code %d", code)
}

func TestSystemErrorDescription(t *testing.T) {
	stubErrorMessage(t, noSuchFile)

	cases := []struct {
		name  string
		err   *SystemError
		want  string
		state DescriptionState
	}{
		{
			name:  "code only",
			err:   NewSystemError(2),
			want:  "(2) - No such file or directory",
			state: Formatted,
		},
		{
			name:  "with user message",
			err:   NewSystemError(2).WithUserMessage("opening config"),
			want:  "opening config: (2) - No such file or directory",
			state: Formatted,
		},
		{
			name:  "with formatted user message",
			err:   NewSystemError(2).WithUserMessage("opening %s", "/etc/dnf/dnf.conf"),
			want:  "opening /etc/dnf/dnf.conf: (2) - No such file or directory",
			state: Formatted,
		},
		{
			name:  "user message missing an argument",
			err:   NewSystemError(2).WithUserMessage("opening %s in %s", "dnf.conf"),
			want:  "opening %s in %s: (2) - No such file or directory",
			state: Fallback,
		},
		{
			name:  "unresolved message",
			err:   NewSystemError(9999),
			want:  "(9999) - ",
			state: Fallback,
		},
		{
			name:  "unresolved message with user message",
			err:   NewSystemError(9999).WithUserMessage("reading lock"),
			want:  "reading lock: (9999) - ",
			state: Fallback,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			testutils.AssertEqual(t, Unformatted, tc.err.State())
			testutils.AssertEqual(t, tc.want, tc.err.Description())
			testutils.AssertErrorMessage(t, tc.want, tc.err)
			testutils.AssertEqual(t, tc.state, tc.err.State())
		})
	}
}

func TestSystemErrorLookupPanics(t *testing.T) {
	stubErrorMessage(t, func(int) (string, error) { panic("no locale") })

	err := NewSystemError(5)
	testutils.AssertEqual(t, "", err.ErrorMessage())
	testutils.AssertEqual(t, "(5) - ", err.Description())
}

type panickingTranslator struct{}

func (panickingTranslator) Translate(string) (string, error) { panic("catalog corrupted") }

func TestSystemErrorUserMessageFallback(t *testing.T) {
	stubErrorMessage(t, noSuchFile)
	restore := SetTranslator(panickingTranslator{})
	defer restore()

	err := NewSystemError(2).WithUserMessage("opening config")
	testutils.AssertEqual(t, "opening config: (2) - No such file or directory", err.Description())
	testutils.AssertEqual(t, Fallback, err.State())
}

// stubComposeSystemText makes composing a SystemError description
// panic for the duration of the test.
func stubComposeSystemText(t *testing.T) {
	t.Helper()
	prev := composeSystemText
	composeSystemText = func(string, int, string) string { panic("out of memory") }
	t.Cleanup(func() { composeSystemText = prev })
}

func TestSystemErrorCompositionFails(t *testing.T) {
	stubErrorMessage(t, noSuchFile)
	stubComposeSystemText(t)

	cases := []struct {
		name       string
		err        *SystemError
		translator Translator
		want       string
	}{
		{
			name: "user message template",
			err:  NewSystemError(2).WithUserMessage("opening %s", "config"),
			want: "opening %s",
		},
		{
			name:       "translated user message template",
			err:        NewSystemError(2).WithUserMessage("opening %s", "config"),
			translator: TranslatorFunc(func(string) (string, error) { return "öffne %s", nil }),
			want:       "öffne %s",
		},
		{
			name:       "untranslatable user message template",
			err:        NewSystemError(2).WithUserMessage("opening %s", "config"),
			translator: panickingTranslator{},
			want:       "opening %s",
		},
		{
			name: "OS message",
			err:  NewSystemError(2),
			want: "No such file or directory",
		},
		{
			name: "kind default text",
			err:  NewSystemError(9999),
			want: systemDescription,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.translator != nil {
				restore := SetTranslator(tc.translator)
				defer restore()
			}
			testutils.AssertEqual(t, tc.want, tc.err.Description())
			testutils.AssertEqual(t, Fallback, tc.err.State())
		})
	}
}

func TestSystemErrorAccessors(t *testing.T) {
	stubErrorMessage(t, noSuchFile)
	cause := New("open failed")

	err := NewSystemError(2, WithCause(cause)).WithUserMessage("opening %s", "repo")
	testutils.AssertEqual(t, 2, err.Code())
	testutils.AssertEqual(t, "No such file or directory", err.ErrorMessage())
	testutils.AssertEqual(t, "opening repo", err.UserMessage())
	testutils.AssertEqual(t, KindSystem, err.Kind())
	testutils.AssertTrue(t, err.Unwrap() == cause, "cause")
	testutils.AssertEqual(t, "", NewSystemError(2).UserMessage())
}

func TestSystemErrorWithUserMessageDoesNotMutate(t *testing.T) {
	stubErrorMessage(t, noSuchFile)

	orig := NewSystemError(2)
	testutils.AssertEqual(t, "(2) - No such file or directory", orig.Description())

	prefixed := orig.WithUserMessage("opening config")
	testutils.AssertEqual(t, "opening config: (2) - No such file or directory", prefixed.Description())
	testutils.AssertEqual(t, "(2) - No such file or directory", orig.Description())
}

func TestSystemErrorIs(t *testing.T) {
	err := NewSystemError(int(syscall.ENOENT))
	testutils.AssertTrue(t, Is(err, syscall.ENOENT))
	testutils.AssertFalse(t, Is(err, syscall.EACCES))
	testutils.AssertFalse(t, Is(err, errors.New("x")))

	wrapped := KindRepository.Wrap(err, "Cannot load repository %s", "fedora")
	testutils.AssertTrue(t, Is(wrapped, syscall.ENOENT), "through a chain")
}

func TestSystemErrorFrom(t *testing.T) {
	_, openErr := os.Open(filepath.Join(t.TempDir(), "missing.repo"))
	testutils.AssertNotNil(t, openErr)

	err := SystemErrorFrom(openErr)
	testutils.AssertNotNil(t, err)
	testutils.AssertEqual(t, int(syscall.ENOENT), err.Code())
	testutils.AssertTrue(t, err.Unwrap() == openErr, "cause")
	testutils.AssertTrue(t, Is(err, os.ErrNotExist), "cause still matches")

	testutils.AssertTrue(t, SystemErrorFrom(errors.New("plain")) == nil, "no errno")
	testutils.AssertTrue(t, SystemErrorFrom(nil) == nil, "nil")
}

func TestSystemErrorCopy(t *testing.T) {
	stubErrorMessage(t, noSuchFile)

	orig := NewSystemError(2).WithUserMessage("opening %s", "config")
	testutils.AssertEqual(t, "opening config: (2) - No such file or directory", orig.Description())

	c := orig.Copy()
	testutils.AssertTrue(t, c != orig, "distinct value")
	testutils.AssertEqual(t, orig.Description(), c.Description())

	degraded := &SystemError{code: 2, userMessage: NewError("opening %s", WithFormatter(brokenCloner{}))}
	testutils.AssertEqual(t, "formatted: opening %s: (2) - No such file or directory", degraded.Description())
	testutils.AssertEqual(t, "opening %s: (2) - No such file or directory", degraded.Copy().Description())
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"no such file or directory": "No such file or directory",
		"Already capitalized":       "Already capitalized",
		"état inconnu":              "État inconnu",
		"":                          "",
	}
	for in, want := range cases {
		testutils.AssertEqual(t, want, capitalize(in), in)
	}
}
