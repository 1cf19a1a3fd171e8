package handlers

import (
	"html"
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/hestjs/hestjs-website/content"
	"github.com/hestjs/hestjs-website/i18n"
	"github.com/pkg/errors"
)

// PagerView is bound to "pager" in the docs layout.
type PagerView struct {
	HasPrev   bool
	PrevHref  string
	PrevLabel string
	PrevTitle string
	HasNext   bool
	NextHref  string
	NextLabel string
	NextTitle string
}

type docPage struct {
	site *Site
	id   string
}

func (p docPage) Render(loc i18n.Localizer) (Meta, template.HTML, error) {
	s := p.site
	doc, ok := s.docs.Get(loc.Locale(), p.id)
	if !ok {
		return Meta{}, "", errors.Errorf("doc %s not found", p.id)
	}

	ctx := s.newContext(loc, loc.Path(docPath(p.id)))
	ctx.Set("doc", doc)
	ctx.Set("body", s.renderMarkdown(doc.Body))
	ctx.Set("sidebar", s.renderSidebar(loc, p.id))
	ctx.Set("pager", s.pager(loc, p.id))

	out, err := s.docsLayout.Exec(ctx)
	if err != nil {
		return Meta{}, "", errors.Wrapf(err, "error executing docs layout for %s", p.id)
	}

	title := doc.Label()
	if doc.Title != "" {
		title = doc.Title
	}
	meta := Meta{
		Title:       title + " | " + s.manifest.Title,
		Description: doc.Description,
	}
	return meta, template.HTML(out), nil
}

func docPath(id string) string {
	return "/docs/" + id
}

// renderMarkdown converts a doc body to sanitized HTML. A parser keeps state
// between calls, so each render gets its own.
func (s *Site) renderMarkdown(body string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	unsafe := markdown.ToHTML([]byte(body), p, renderer)
	return template.HTML(s.policy.SanitizeBytes(unsafe))
}

func (s *Site) docLabel(locale, id string) string {
	if doc, ok := s.docs.Get(locale, id); ok {
		return doc.Label()
	}
	return id
}

func (s *Site) pager(loc i18n.Localizer, id string) PagerView {
	prev, next := s.sidebar.Neighbors(id)
	view := PagerView{
		PrevLabel: content.Chrome.Previous.In(loc),
		NextLabel: content.Chrome.Next.In(loc),
	}
	if prev != "" {
		view.HasPrev = true
		view.PrevHref = loc.Path(docPath(prev))
		view.PrevTitle = s.docLabel(loc.Locale(), prev)
	}
	if next != "" {
		view.HasNext = true
		view.NextHref = loc.Path(docPath(next))
		view.NextTitle = s.docLabel(loc.Locale(), next)
	}
	return view
}

// renderSidebar writes the visible sidebar tree as nested lists. Draft
// entries never reach the output.
func (s *Site) renderSidebar(loc i18n.Localizer, activeID string) template.HTML {
	var b strings.Builder
	b.WriteString(`<nav class="sidebar" aria-label="Docs sidebar">`)
	s.writeSidebarItems(&b, loc, s.sidebar.Visible(), activeID)
	b.WriteString(`</nav>`)
	return template.HTML(b.String())
}

func (s *Site) writeSidebarItems(b *strings.Builder, loc i18n.Localizer, items content.Sidebar, activeID string) {
	b.WriteString(`<ul class="sidebar-list">`)
	for _, it := range items {
		switch it.Type {
		case content.ItemDoc:
			b.WriteString(`<li><a class="sidebar-link" href="`)
			b.WriteString(html.EscapeString(loc.Path(docPath(it.ID))))
			b.WriteString(`" data-doc-id="`)
			b.WriteString(html.EscapeString(it.ID))
			b.WriteString(`"`)
			if it.ID == activeID {
				b.WriteString(` data-active="true" aria-current="page"`)
			}
			b.WriteString(`>`)
			b.WriteString(html.EscapeString(s.docLabel(loc.Locale(), it.ID)))
			b.WriteString(`</a></li>`)
		case content.ItemCategory:
			label := loc.T(content.CategoryKey(s.manifest.Sidebar.Name, it.Label), it.Label)
			b.WriteString(`<li class="sidebar-category-item"><div class="sidebar-category" data-category="`)
			b.WriteString(html.EscapeString(it.Label))
			b.WriteString(`">`)
			b.WriteString(html.EscapeString(label))
			b.WriteString(`</div>`)
			s.writeSidebarItems(b, loc, it.Items, activeID)
			b.WriteString(`</li>`)
		}
	}
	b.WriteString(`</ul>`)
}
