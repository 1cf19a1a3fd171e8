package handlers

import (
	"html/template"
	"strings"

	"github.com/gobuffalo/plush"
	"github.com/hestjs/hestjs-website/config"
	"github.com/hestjs/hestjs-website/content"
	"github.com/hestjs/hestjs-website/i18n"
	"github.com/hestjs/hestjs-website/sections"
	"github.com/pkg/errors"
)

// Meta is the head information a page hands to the base layout.
type Meta struct {
	Title       string
	Description string
}

// Page renders the body of one route for a locale. The base layout is
// applied by the caller.
type Page interface {
	Render(loc i18n.Localizer) (Meta, template.HTML, error)
}

type homePage struct {
	site *Site
}

func (p homePage) Render(loc i18n.Localizer) (Meta, template.HTML, error) {
	parts, err := p.site.sections.RenderAll(sections.Compose(loc, p.site.manifest.Links))
	if err != nil {
		return Meta{}, "", err
	}

	var body strings.Builder
	for _, part := range parts {
		body.WriteString(string(part))
		body.WriteString("\n")
	}

	meta := Meta{
		Title:       p.site.manifest.Title + " - " + content.HomeMeta.TitleSuffix.In(loc),
		Description: content.HomeMeta.Description.In(loc),
	}
	return meta, template.HTML(body.String()), nil
}

// plushPage is a free-form page written against the template helpers.
type plushPage struct {
	site     *Site
	route    config.Route
	template *plush.Template
}

func (p plushPage) Render(loc i18n.Localizer) (Meta, template.HTML, error) {
	ctx := p.site.newContext(loc, loc.Path(p.route.Path))
	out, err := p.template.Exec(ctx)
	if err != nil {
		return Meta{}, "", errors.Wrapf(err, "error executing template %s", p.route.Source)
	}

	title := p.site.manifest.Title
	if p.route.Title != "" {
		title = loc.T(p.route.Title, p.route.Title) + " | " + title
	}
	return Meta{Title: title, Description: content.HomeMeta.Description.In(loc)}, template.HTML(out), nil
}
