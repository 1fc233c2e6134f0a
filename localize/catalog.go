// Package localize provides the translation side of the error model: a
// pkgerrors.Translator backed by a golang.org/x/text message catalog,
// catalog files in YAML, and locale detection from the environment.
//
// Format templates are their own translation keys, so a catalog only
// maps English templates to translated ones:
//
//	cat := localize.NewCatalog(language.German)
//	_ = cat.Set(language.German, "Cannot open %s", "Kann %s nicht öffnen")
//	restore := pkgerrors.SetTranslator(cat)
//	defer restore()
package localize

import (
	"strings"

	"github.com/juju/loggo"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"

	"github.com/secureworks/pkgerrors"
)

var logger = loggo.GetLogger("pkgerrors.localize")

// Catalog translates templates into one language. Lookups walk from
// the catalog's language to its parents (de-CH, de, und), and a
// template without a translation is returned unchanged.
type Catalog struct {
	builder *catalog.Builder
	tag     language.Tag
}

var _ pkgerrors.Translator = (*Catalog)(nil)

// NewCatalog returns an empty catalog translating into tag.
func NewCatalog(tag language.Tag) *Catalog {
	return &Catalog{
		builder: catalog.NewBuilder(catalog.Fallback(language.English)),
		tag:     tag,
	}
}

// Language returns the language templates are translated into.
func (c *Catalog) Language() language.Tag { return c.tag }

// Languages returns every language with at least one translation.
func (c *Catalog) Languages() []language.Tag { return c.builder.Languages() }

// Set adds the translation of template for tag.
func (c *Catalog) Set(tag language.Tag, template, translation string) error {
	return c.builder.SetString(tag, template, translation)
}

// SetMessages adds all translations for tag.
func (c *Catalog) SetMessages(tag language.Tag, messages map[string]string) error {
	for template, translation := range messages {
		if err := c.Set(tag, template, translation); err != nil {
			return pkgerrors.KindConfig.Wrap(err, "cannot add translation of %q for %s", template, tag)
		}
	}
	return nil
}

// Use returns a catalog sharing c's translations but translating into
// the best match of the preferred languages.
func (c *Catalog) Use(preferred ...language.Tag) *Catalog {
	tag := c.tag
	if langs := c.Languages(); len(langs) > 0 && len(preferred) > 0 {
		matcher := language.NewMatcher(langs)
		_, idx, confidence := matcher.Match(preferred...)
		if confidence != language.No {
			tag = langs[idx]
		}
	}
	return &Catalog{builder: c.builder, tag: tag}
}

// Translate returns the translation of template, or template itself
// when the catalog has none.
func (c *Catalog) Translate(template string) (string, error) {
	var r renderer
	err := c.builder.Context(c.tag, &r).Execute(template)
	if err == catalog.ErrNotFound {
		logger.Tracef("no %s translation for %q", c.tag, template)
		return template, nil
	}
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// renderer collects the text of an executed catalog message. Messages
// are templates filled later by the error's formatter, so arguments are
// never substituted here.
type renderer struct {
	b strings.Builder
}

func (r *renderer) Render(s string) { r.b.WriteString(s) }
func (r *renderer) Arg(i int) interface{} { return nil }
func (r *renderer) String() string { return r.b.String() }
