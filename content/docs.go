package content

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const frontmatterSeparator = "\n---\n"

// Doc is one markdown documentation page.
type Doc struct {
	ID           string
	Locale       string
	Title        string
	Description  string
	SidebarLabel string
	Body         string
}

// Label is the text used for the doc in navigation.
func (d Doc) Label() string {
	if d.SidebarLabel != "" {
		return d.SidebarLabel
	}
	if d.Title != "" {
		return d.Title
	}
	return d.ID
}

type frontmatter struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	SidebarLabel string `yaml:"sidebar_label"`
}

// DocSet holds docs per locale, keyed by id.
type DocSet struct {
	defaultLocale string
	docs          map[string]map[string]Doc
}

// LoadDocs reads <dir>/<locale>/**/*.md for each locale. The doc id is the
// path below the locale directory without the .md suffix.
func LoadDocs(fsys fs.FS, dir, defaultLocale string, locales []string) (*DocSet, error) {
	set := &DocSet{defaultLocale: defaultLocale, docs: map[string]map[string]Doc{}}

	for _, locale := range locales {
		root := path.Join(dir, locale)
		if _, err := fs.Stat(fsys, root); err != nil {
			if locale == defaultLocale {
				return nil, errors.Wrapf(err, "docs for default locale %s", locale)
			}
			continue
		}

		err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || path.Ext(p) != ".md" {
				return nil
			}

			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return errors.WithStack(err)
			}

			id := strings.TrimSuffix(strings.TrimPrefix(p, root+"/"), ".md")
			doc, err := ParseDoc(id, locale, data)
			if err != nil {
				return errors.Wrap(err, p)
			}

			if set.docs[locale] == nil {
				set.docs[locale] = map[string]Doc{}
			}
			set.docs[locale][id] = doc
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return set, nil
}

// ParseDoc splits YAML frontmatter from the markdown body.
func ParseDoc(id, locale string, data []byte) (Doc, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	parts := strings.SplitN(text, frontmatterSeparator, 2)
	if len(parts) != 2 {
		return Doc{}, errors.Errorf("invalid markdown file format: %s", id)
	}

	var meta frontmatter
	if err := yaml.Unmarshal([]byte(strings.TrimPrefix(parts[0], "---\n")), &meta); err != nil {
		return Doc{}, errors.Wrap(err, "error parsing frontmatter")
	}

	return Doc{
		ID:           id,
		Locale:       locale,
		Title:        meta.Title,
		Description:  meta.Description,
		SidebarLabel: meta.SidebarLabel,
		Body:         parts[1],
	}, nil
}

// Get returns the doc in locale, falling back to the default locale.
func (s *DocSet) Get(locale, id string) (Doc, bool) {
	if d, ok := s.docs[locale][id]; ok {
		return d, true
	}
	d, ok := s.docs[s.defaultLocale][id]
	return d, ok
}

// IDs returns the ids of the default-locale docs, sorted. A translation
// without a default-locale source is not published.
func (s *DocSet) IDs() []string {
	ids := make([]string, 0, len(s.docs[s.defaultLocale]))
	for id := range s.docs[s.defaultLocale] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Orphans returns "<locale>/<id>" for each translated doc that has no
// default-locale source, sorted.
func (s *DocSet) Orphans() []string {
	var out []string
	for locale, byID := range s.docs {
		if locale == s.defaultLocale {
			continue
		}
		for id := range byID {
			if _, ok := s.docs[s.defaultLocale][id]; !ok {
				out = append(out, locale+"/"+id)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Dangling returns the visible sidebar ids that have no doc.
func (s *DocSet) Dangling(sb Sidebar) []string {
	var out []string
	for _, id := range sb.DocIDs() {
		if _, ok := s.Get(s.defaultLocale, id); !ok {
			out = append(out, id)
		}
	}
	return out
}
