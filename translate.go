package pkgerrors

import (
	"fmt"
	"sync/atomic"
)

// Translator resolves a format template to its localized text. The
// template string itself is the lookup key. Implementations should
// return the template unchanged when they have no translation for it;
// an error (or a panic) means the lookup machinery itself failed.
type Translator interface {
	Translate(template string) (string, error)
}

// TranslatorFunc adapts an ordinary function to the Translator
// interface.
type TranslatorFunc func(template string) (string, error)

// Translate calls f(template).
func (f TranslatorFunc) Translate(template string) (string, error) { return f(template) }

type translatorHolder struct{ t Translator }

var activeTranslator atomic.Pointer[translatorHolder]

// SetTranslator installs the Translator used by every description
// computed from now on and returns a function restoring the previous
// one. A nil Translator disables localization.
//
// Descriptions are memoized, so errors that were already described
// keep their text.
func SetTranslator(t Translator) (restore func()) {
	prev := activeTranslator.Swap(&translatorHolder{t: t})
	return func() { activeTranslator.Store(prev) }
}

// translate looks up template using the active Translator. Panics in
// the Translator are reported as errors.
func translate(template string) (text string, err error) {
	h := activeTranslator.Load()
	if h == nil || h.t == nil {
		return template, nil
	}
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("translator panicked: %v", r)
		}
	}()
	return h.t.Translate(template)
}
