package config

// config/yaml.go

const (
	TemplateHome     = "HOME"
	TemplatePlush    = "PLUSH"
	TemplateMarkdown = "MARKDOWN"

	SourceYAML           = "YAML"
	SourceDocusaurusJSON = "DOCUSAURUS_JSON"
)

type JavascriptTarget struct {
	Source string `yaml:"source"`
	OutDir string `yaml:"out_dir"`
}

type SiteManifest struct {
	Title              string                      `yaml:"title"`
	Origin             string                      `yaml:"origin"`
	DefaultLocale      string                      `yaml:"default_locale"`
	Locales            []string                    `yaml:"locales"`
	Routes             []Route                     `yaml:"routes"`
	JavascriptTargets  map[string]JavascriptTarget `yaml:"javascript"`
	Translations       []Translation               `yaml:"translations"`
	NotFoundPageSource string                      `yaml:"not_found_page_source"`
	Layouts            Layouts                     `yaml:"layouts"`
	Sidebar            SidebarSource               `yaml:"sidebar"`
	DocsDir            string                      `yaml:"docs_dir"`
	Links              Links                       `yaml:"links"`
}

type Route struct {
	Path         string `yaml:"path"`
	Source       string `yaml:"source"`
	TemplateType string `yaml:"template_type"`
	// Title is a translation key for PLUSH pages.
	Title string `yaml:"title"`
}

type Translation struct {
	Code       string `yaml:"code"`
	Source     string `yaml:"source"`
	SourceType string `yaml:"source_type"`
}

type Layouts struct {
	Base string `yaml:"base"`
	Docs string `yaml:"docs"`
}

type SidebarSource struct {
	Source string `yaml:"source"`
	Name   string `yaml:"name"`
}

// Links are the navigation targets shared by the sections and the page chrome.
type Links struct {
	Docs     string `yaml:"docs"`
	Examples string `yaml:"examples"`
}
