package handlers

import (
	"html/template"
	"net/http"

	"github.com/hestjs/hestjs-website/content"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Custom404Handler renders the not-found page. The locale comes from the URL
// prefix, or from Accept-Language for unprefixed paths.
func (s *Site) Custom404Handler(w http.ResponseWriter, r *http.Request) {
	locale, _ := s.catalog.Strip(r.URL.Path)
	if locale == s.catalog.Default() {
		if accept := r.Header.Get("Accept-Language"); accept != "" {
			locale = s.catalog.Match(accept)
		}
	}

	pageHTML, err := s.RenderNotFound(locale)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.logger.Debug("page not found", zap.String("path", r.URL.Path), zap.String("locale", locale))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(pageHTML))
}

// RenderNotFound returns the complete 404 page for locale.
func (s *Site) RenderNotFound(locale string) (string, error) {
	loc := s.catalog.Localizer(locale)

	out, err := s.notFound.Exec(s.newContext(loc, loc.Path("/404.html")))
	if err != nil {
		return "", errors.Wrap(err, "error executing 404 template")
	}

	meta := Meta{
		Title:       content.Chrome.NotFound.In(loc) + " | " + s.manifest.Title,
		Description: content.Chrome.NotFoundMsg.In(loc),
	}
	return s.renderLayout(loc, "/404.html", meta, template.HTML(out))
}
