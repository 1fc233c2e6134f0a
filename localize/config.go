package localize

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/secureworks/pkgerrors"
)

// CatalogsEnvKey names the environment variable listing catalog files,
// separated like PATH entries.
const CatalogsEnvKey = "PKGERRORS_CATALOGS"

// Config selects the language of error descriptions and the catalogs
// providing the translations.
type Config struct {
	// Languages are the preferred languages, most preferred first, as
	// BCP 47 tags or POSIX locale names ("de_DE.UTF-8").
	Languages []string
	// Catalogs are paths of YAML catalog files.
	Catalogs []string
}

// ConfigFromEnv builds a Config the way gettext picks a language:
// LANGUAGE (a colon separated list) wins, then LC_ALL, LC_MESSAGES and
// LANG. Catalog files come from PKGERRORS_CATALOGS.
func ConfigFromEnv() Config {
	return configFrom(os.Getenv)
}

func configFrom(getenv func(string) string) Config {
	var cfg Config
	if v := getenv("LANGUAGE"); v != "" {
		cfg.Languages = strings.Split(v, ":")
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(key); v != "" {
			cfg.Languages = append(cfg.Languages, v)
			break
		}
	}
	if v := getenv(CatalogsEnvKey); v != "" {
		cfg.Catalogs = filepath.SplitList(v)
	}
	return cfg
}

// Tags parses the configured languages, skipping the ones that cannot
// be parsed. The POSIX "C" locale maps to English.
func (cfg Config) Tags() []language.Tag {
	var tags []language.Tag
	for _, name := range cfg.Languages {
		tag, ok := parseLocale(name)
		if !ok {
			logger.Debugf("ignoring unknown locale %q", name)
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// parseLocale accepts "de", "de-DE", "de_DE", "de_DE.UTF-8" and
// "sr_RS@latin".
func parseLocale(name string) (language.Tag, bool) {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "":
		return language.Und, false
	case "C", "POSIX":
		return language.English, true
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// NewTranslator loads the configured catalogs and returns a catalog
// translating into the best supported match of the configured
// languages.
func NewTranslator(cfg Config) (*Catalog, error) {
	tags := cfg.Tags()
	tag := language.English
	if len(tags) > 0 {
		tag = tags[0]
	}

	cat := NewCatalog(tag)
	for _, path := range cfg.Catalogs {
		if err := cat.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return cat.Use(tags...), nil
}

// Setup installs a translator built from cfg for all error
// descriptions. The returned function restores the previous
// translator.
func Setup(cfg Config) (restore func(), err error) {
	cat, err := NewTranslator(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debugf("translating error descriptions into %s", cat.Language())
	return pkgerrors.SetTranslator(cat), nil
}
