package handlers

import (
	"html/template"
	"regexp"
	"strings"

	"github.com/gobuffalo/plush"
	"github.com/hestjs/hestjs-website/content"
	"github.com/hestjs/hestjs-website/i18n"
	"github.com/hestjs/hestjs-website/sections"
	"github.com/pkg/errors"
)

var localeLabels = map[string]string{
	"en":    "English",
	"zh-CN": "简体中文",
}

// Alternate is one entry of the locale switcher and its hreflang link.
type Alternate struct {
	Locale   string
	Label    string
	Href     string
	Absolute string
	// Active is "true" or "false" so it can be written straight into a
	// data attribute.
	Active string
}

// PageView is bound to "page" in the base layout.
type PageView struct {
	Lang        string
	Title       string
	Description string
	Canonical   string
	Alternates  []Alternate
	Scripts     []string

	SiteTitle     string
	HomeHref      string
	SkipLabel     string
	DocsHref      string
	DocsLabel     string
	ExamplesHref  string
	ExamplesLabel string
	LanguageLabel string
	GlobeIcon     template.HTML
	ThemeLabel    string
	ThemeIcon     template.HTML
	Copyright     string
}

func (s *Site) pageView(loc i18n.Localizer, path string, meta Meta) PageView {
	view := PageView{
		Lang:          loc.Locale(),
		Title:         meta.Title,
		Description:   meta.Description,
		Canonical:     s.manifest.Origin + loc.Path(path),
		Scripts:       s.scripts,
		SiteTitle:     s.manifest.Title,
		HomeHref:      loc.Path("/"),
		SkipLabel:     content.Chrome.SkipToMain.In(loc),
		DocsHref:      loc.Path(s.manifest.Links.Docs),
		DocsLabel:     content.Chrome.Docs.In(loc),
		ExamplesHref:  s.manifest.Links.Examples,
		ExamplesLabel: content.Chrome.Examples.In(loc),
		LanguageLabel: content.Chrome.Language.In(loc),
		GlobeIcon:     sections.Icon("globe", "w-4 h-4 inline-block"),
		ThemeLabel:    content.Chrome.ToggleTheme.In(loc),
		ThemeIcon:     sections.Icon("sun", "w-5 h-5"),
		Copyright:     content.Chrome.Copyright.In(loc),
	}

	for _, locale := range s.catalog.Locales() {
		href := s.catalog.Prefix(locale, path)
		active := "false"
		if locale == loc.Locale() {
			active = "true"
		}
		label, ok := localeLabels[locale]
		if !ok {
			label = locale
		}
		view.Alternates = append(view.Alternates, Alternate{
			Locale:   locale,
			Label:    label,
			Href:     href,
			Absolute: s.manifest.Origin + href,
			Active:   active,
		})
	}

	return view
}

// renderLayout wraps body in the base layout. path is the unprefixed site
// path of the page.
func (s *Site) renderLayout(loc i18n.Localizer, path string, meta Meta, body template.HTML) (string, error) {
	ctx := s.newContext(loc, loc.Path(path))
	ctx.Set("page", s.pageView(loc, path, meta))
	ctx.Set("yield", body)

	out, err := s.baseLayout.Exec(ctx)
	if err != nil {
		return "", errors.Wrap(err, "error executing base layout")
	}
	return out, nil
}

// newContext returns a plush context carrying the template helpers.
func (s *Site) newContext(loc i18n.Localizer, currentPath string) *plush.Context {
	ctx := plush.NewContext()

	ctx.Set("text", func(key string) string {
		return loc.T(key, s.defaults[key])
	})
	ctx.Set("lang", func() string {
		return loc.Locale()
	})
	ctx.Set("supportedLangs", func() []string {
		return s.catalog.Locales()
	})
	ctx.Set("localePath", func(p string) string {
		return loc.Path(p)
	})
	ctx.Set("currentPath", func() string {
		return currentPath
	})
	ctx.Set("canonical", func() string {
		return s.manifest.Origin + currentPath
	})
	ctx.Set("startsWith", func(str, prefix string) bool {
		return strings.HasPrefix(str, prefix)
	})
	ctx.Set("matches", func(pattern, str string) bool {
		matched, err := regexp.MatchString(pattern, str)
		return err == nil && matched
	})
	ctx.Set("icon", func(name, class string) template.HTML {
		return sections.Icon(name, class)
	})

	return ctx
}
