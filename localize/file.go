package localize

import (
	"io"
	"os"
	"sort"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/secureworks/pkgerrors"
)

// catalogFile is the YAML layout of a catalog file: translations keyed
// by language tag, then by template.
//
//	de:
//	  "Cannot open %s": "Kann %s nicht öffnen"
//	fr:
//	  "System error": "Erreur système"
type catalogFile map[string]map[string]string

// Load reads YAML translations from r into the catalog.
func (c *Catalog) Load(r io.Reader) error {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil
		}
		return pkgerrors.KindConfig.Wrap(err, "cannot decode translation catalog")
	}

	langs := make([]string, 0, len(file))
	for lang := range file {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return pkgerrors.KindConfig.Wrap(err, "invalid language %q in translation catalog", lang)
		}
		if err := c.SetMessages(tag, file[lang]); err != nil {
			return err
		}
		logger.Debugf("loaded %d %s translations", len(file[lang]), tag)
	}
	return nil
}

// LoadFile reads a YAML catalog file into the catalog.
func (c *Catalog) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if serr := pkgerrors.SystemErrorFrom(err); serr != nil {
			return serr.WithUserMessage("cannot open translation catalog %s", path)
		}
		return pkgerrors.KindConfig.Wrap(err, "cannot open translation catalog %s", path)
	}
	defer f.Close()

	if err := c.Load(f); err != nil {
		return pkgerrors.KindConfig.Wrap(err, "cannot load translation catalog %s", path)
	}
	logger.Infof("loaded translation catalog %s", path)
	return nil
}
