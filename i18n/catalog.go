// Package i18n holds the per-locale string tables and the lookups the
// sections and page chrome use to resolve their copy.
package i18n

import (
	"encoding/json"
	"io/fs"
	"sort"
	"strings"

	"github.com/hestjs/hestjs-website/config"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// Catalog maps locale -> key -> text.
type Catalog struct {
	defaultLocale string
	locales       []string
	dict          map[string]map[string]string
	matcher       language.Matcher
}

// New builds a catalog from in-memory tables. The default locale is always
// listed first regardless of its position in locales.
func New(defaultLocale string, locales []string, dict map[string]map[string]string) *Catalog {
	ordered := []string{defaultLocale}
	for _, l := range locales {
		if l != defaultLocale {
			ordered = append(ordered, l)
		}
	}

	tags := make([]language.Tag, 0, len(ordered))
	for _, l := range ordered {
		tags = append(tags, language.Make(l))
	}

	if dict == nil {
		dict = map[string]map[string]string{}
	}

	return &Catalog{
		defaultLocale: defaultLocale,
		locales:       ordered,
		dict:          dict,
		matcher:       language.NewMatcher(tags),
	}
}

// Load reads every translation source listed in the manifest. Locales without
// a source get an empty table; the default locale relies on call-site defaults.
func Load(fsys fs.FS, defaultLocale string, locales []string, sources []config.Translation) (*Catalog, error) {
	dict := make(map[string]map[string]string, len(sources))

	for _, src := range sources {
		data, err := fs.ReadFile(fsys, src.Source)
		if err != nil {
			return nil, errors.Wrapf(err, "load translations for %s", src.Code)
		}

		var table map[string]string
		switch src.SourceType {
		case config.SourceDocusaurusJSON:
			table, err = parseDocusaurusJSON(data)
		default:
			err = yaml.Unmarshal(data, &table)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", src.Source)
		}

		if dict[src.Code] == nil {
			dict[src.Code] = make(map[string]string, len(table))
		}
		for k, v := range table {
			dict[src.Code][k] = v
		}
	}

	return New(defaultLocale, locales, dict), nil
}

func parseDocusaurusJSON(data []byte) (map[string]string, error) {
	var raw map[string]struct {
		Message     string `json:"message"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	table := make(map[string]string, len(raw))
	for k, v := range raw {
		table[k] = v.Message
	}
	return table, nil
}

// Default returns the default locale.
func (c *Catalog) Default() string { return c.defaultLocale }

// Locales returns the supported locales, default first.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.locales))
	copy(out, c.locales)
	return out
}

// Supports reports whether locale is one of the configured locales.
func (c *Catalog) Supports(locale string) bool {
	for _, l := range c.locales {
		if l == locale {
			return true
		}
	}
	return false
}

// Lookup returns the locale's own value for key, if any.
func (c *Catalog) Lookup(locale, key string) (string, bool) {
	v, ok := c.dict[locale][key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// T resolves key for locale. Order: the locale's table, the literal fallback,
// the default locale's table, the key itself.
func (c *Catalog) T(locale, key, fallback string) string {
	if v, ok := c.Lookup(locale, key); ok {
		return v
	}
	if fallback != "" {
		return fallback
	}
	if v, ok := c.Lookup(c.defaultLocale, key); ok {
		return v
	}
	return key
}

// Missing lists keys that locale has no value for, sorted.
func (c *Catalog) Missing(locale string, keys []string) []string {
	var missing []string
	for _, k := range keys {
		if _, ok := c.Lookup(locale, k); !ok {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return missing
}

// Match picks the best supported locale for an Accept-Language header.
func (c *Catalog) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.defaultLocale
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(c.locales) {
		return c.defaultLocale
	}
	return c.locales[idx]
}

// Prefix maps a site path to its locale-specific URL. The default locale
// lives at the root.
func (c *Catalog) Prefix(locale, p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if locale == "" || locale == c.defaultLocale {
		return p
	}
	return "/" + locale + p
}

// Strip removes a non-default locale prefix from p and reports the locale.
func (c *Catalog) Strip(p string) (string, string) {
	for _, l := range c.locales[1:] {
		prefix := "/" + l
		if p == prefix {
			return l, "/"
		}
		if strings.HasPrefix(p, prefix+"/") {
			return l, strings.TrimPrefix(p, prefix)
		}
	}
	return c.defaultLocale, p
}

// Localizer binds the catalog to one locale.
func (c *Catalog) Localizer(locale string) Localizer {
	if !c.Supports(locale) {
		locale = c.defaultLocale
	}
	return Localizer{catalog: c, locale: locale}
}

// Localizer resolves copy for a single locale.
type Localizer struct {
	catalog *Catalog
	locale  string
}

func (l Localizer) Locale() string { return l.locale }

func (l Localizer) T(key, fallback string) string {
	return l.catalog.T(l.locale, key, fallback)
}

// Path returns p under this locale's URL prefix.
func (l Localizer) Path(p string) string {
	return l.catalog.Prefix(l.locale, p)
}
