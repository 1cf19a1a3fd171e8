package config

import (
	"io/fs"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const ManifestFile = "manifest.yaml"

// LoadManifest reads manifest.yaml from the site filesystem and fills defaults.
func LoadManifest(fsys fs.FS) (*SiteManifest, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var manifest SiteManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, "parse manifest")
	}

	manifest.applyDefaults()
	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	return &manifest, nil
}

func (m *SiteManifest) applyDefaults() {
	if m.DefaultLocale == "" {
		m.DefaultLocale = "en"
	}
	if len(m.Locales) == 0 {
		m.Locales = []string{m.DefaultLocale}
	}
	if m.Layouts.Base == "" {
		m.Layouts.Base = "templates/layouts/base.plush.html"
	}
	if m.Layouts.Docs == "" {
		m.Layouts.Docs = "templates/layouts/docs.plush.html"
	}
	if m.NotFoundPageSource == "" {
		m.NotFoundPageSource = "templates/404.plush.html"
	}
	if m.DocsDir == "" {
		m.DocsDir = "docs"
	}
	if m.Sidebar.Name == "" {
		m.Sidebar.Name = "tutorialSidebar"
	}
	if m.Links.Docs == "" {
		m.Links.Docs = "/docs/intro"
	}
	m.Origin = strings.TrimSuffix(m.Origin, "/")
}

// Validate reports manifest mistakes that would otherwise surface as broken pages.
func (m *SiteManifest) Validate() error {
	found := false
	for _, l := range m.Locales {
		if l == m.DefaultLocale {
			found = true
			break
		}
	}
	if !found {
		return errors.Errorf("default locale %q is not listed in locales", m.DefaultLocale)
	}

	for _, route := range m.Routes {
		if !strings.HasPrefix(route.Path, "/") {
			return errors.Errorf("route %q must start with /", route.Path)
		}
		switch route.TemplateType {
		case TemplateHome, TemplatePlush, TemplateMarkdown:
		default:
			return errors.Errorf("route %s: unsupported template type %q", route.Path, route.TemplateType)
		}
	}

	for _, t := range m.Translations {
		switch t.SourceType {
		case "", SourceYAML, SourceDocusaurusJSON:
		default:
			return errors.Errorf("translation %s: unsupported source type %q", t.Code, t.SourceType)
		}
	}

	return nil
}
