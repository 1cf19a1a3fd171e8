// Package sections builds the home page sections from static copy and
// renders them through plush templates.
package sections

import (
	"html/template"
	"io/fs"
	"path"

	"github.com/gobuffalo/plush"
	"github.com/hestjs/hestjs-website/config"
	"github.com/pkg/errors"
)

const (
	NameHero        = "hero"
	NameCodeExample = "code-example"
	NameFeatures    = "features"
	NameGetStarted  = "get-started"
)

// Order is the fixed order of sections on the home page.
var Order = []string{NameHero, NameCodeExample, NameFeatures, NameGetStarted}

// Localizer resolves copy and locale-prefixed paths for one locale.
type Localizer interface {
	T(key, fallback string) string
	Path(p string) string
}

// Section pairs a template name with its view model.
type Section struct {
	Name string
	View interface{}
}

// Compose builds every home section for loc in page order.
func Compose(loc Localizer, links config.Links) []Section {
	return []Section{
		{Name: NameHero, View: NewHero(loc, links)},
		{Name: NameCodeExample, View: NewCodeExample(loc)},
		{Name: NameFeatures, View: NewFeatures(loc)},
		{Name: NameGetStarted, View: NewGetStarted(loc, links)},
	}
}

// Renderer holds the parsed section templates.
type Renderer struct {
	templates map[string]*plush.Template
}

// NewRenderer parses <dir>/<name>.plush.html for every section in Order.
func NewRenderer(fsys fs.FS, dir string) (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*plush.Template, len(Order))}
	for _, name := range Order {
		src := path.Join(dir, name+".plush.html")
		data, err := fs.ReadFile(fsys, src)
		if err != nil {
			return nil, errors.Wrapf(err, "section %s", name)
		}
		t, err := plush.Parse(string(data))
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", src)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Render executes the section's template with its view bound to "view".
func (r *Renderer) Render(s Section) (template.HTML, error) {
	t, ok := r.templates[s.Name]
	if !ok {
		return "", errors.Errorf("unknown section %q", s.Name)
	}

	ctx := plush.NewContext()
	ctx.Set("view", s.View)

	out, err := t.Exec(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "render section %s", s.Name)
	}
	return template.HTML(out), nil
}

// RenderAll renders sections in the order given.
func (r *Renderer) RenderAll(sections []Section) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(sections))
	for _, s := range sections {
		h, err := r.Render(s)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}
