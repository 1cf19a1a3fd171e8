package handlers

import (
	"fmt"

	"github.com/hestjs/hestjs-website/content"
)

// TranslationKeys lists every key the rendered pages look up, including the
// labels of visible sidebar categories.
func (s *Site) TranslationKeys() []string {
	keys := content.Keys()
	var walk func(items content.Sidebar)
	walk = func(items content.Sidebar) {
		for _, it := range items {
			if it.Type == content.ItemCategory {
				keys = append(keys, content.CategoryKey(s.manifest.Sidebar.Name, it.Label))
				walk(it.Items)
			}
		}
	}
	walk(s.sidebar.Visible())
	return keys
}

// Check reports content problems: keys a non-default locale does not
// translate, sidebar entries without a doc and translated docs with no
// default-locale source.
func (s *Site) Check() []string {
	var problems []string

	keys := s.TranslationKeys()
	for _, locale := range s.catalog.Locales()[1:] {
		for _, key := range s.catalog.Missing(locale, keys) {
			problems = append(problems, fmt.Sprintf("%s: missing translation %q", locale, key))
		}
	}

	for _, id := range s.docs.Dangling(s.sidebar) {
		problems = append(problems, fmt.Sprintf("sidebar %s: no doc for %q", s.manifest.Sidebar.Name, id))
	}

	for _, orphan := range s.docs.Orphans() {
		problems = append(problems, fmt.Sprintf("docs %s: translation has no %s source and is not published", orphan, s.catalog.Default()))
	}

	return problems
}
