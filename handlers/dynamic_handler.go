package handlers

import (
	"encoding/xml"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gobuffalo/plush"
	"github.com/gorilla/mux"
	"github.com/hestjs/hestjs-website/config"
	"github.com/hestjs/hestjs-website/content"
	"github.com/hestjs/hestjs-website/i18n"
	"github.com/hestjs/hestjs-website/javascript"
	"github.com/hestjs/hestjs-website/logging"
	"github.com/hestjs/hestjs-website/sections"
	"github.com/hestjs/hestjs-website/utils"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PageRoutePrefix is the name prefix of every route that renders a page.
const PageRoutePrefix = "page:"

// Options configures SetupRouter.
type Options struct {
	// FS holds manifest.yaml and everything it references.
	FS fs.FS
	// Origin overrides the manifest origin when set.
	Origin string
	// Prod minifies client scripts.
	Prod bool
	// SkipScripts leaves the client bundle out. Used by tests that only
	// look at markup.
	SkipScripts bool
	Logger      *zap.Logger
}

// Site is the loaded website and its router. It is read-only after setup.
type Site struct {
	fsys     fs.FS
	manifest *config.SiteManifest
	catalog  *i18n.Catalog
	sidebar  content.Sidebar
	docs     *content.DocSet
	sections *sections.Renderer
	defaults map[string]string

	baseLayout *plush.Template
	docsLayout *plush.Template
	notFound   *plush.Template

	assets  []javascript.Asset
	scripts []string
	routes  []string

	policy *bluemonday.Policy
	router *mux.Router
	logger *zap.Logger
}

// SetupRouter loads the site from opts.FS and registers every page for every
// locale.
func SetupRouter(opts Options) (*Site, error) {
	if opts.FS == nil {
		return nil, errors.New("site filesystem is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	manifest, err := config.LoadManifest(opts.FS)
	if err != nil {
		return nil, errors.Wrap(err, "error loading manifest")
	}
	if opts.Origin != "" {
		manifest.Origin = strings.TrimSuffix(opts.Origin, "/")
	}

	s := &Site{
		fsys:     opts.FS,
		manifest: manifest,
		defaults: content.Defaults(),
		policy:   bluemonday.UGCPolicy(),
		logger:   logger,
	}

	s.catalog, err = i18n.Load(opts.FS, manifest.DefaultLocale, manifest.Locales, manifest.Translations)
	if err != nil {
		return nil, errors.Wrap(err, "error loading translations")
	}

	if manifest.Sidebar.Source != "" {
		sidebars, err := content.LoadSidebars(opts.FS, manifest.Sidebar.Source)
		if err != nil {
			return nil, errors.Wrap(err, "error loading sidebars")
		}
		s.sidebar = sidebars[manifest.Sidebar.Name]
	}

	s.docs, err = content.LoadDocs(opts.FS, manifest.DocsDir, manifest.DefaultLocale, manifest.Locales)
	if err != nil {
		return nil, errors.Wrap(err, "error loading docs")
	}

	s.sections, err = sections.NewRenderer(opts.FS, "templates/sections")
	if err != nil {
		return nil, errors.Wrap(err, "error loading sections")
	}

	if s.baseLayout, err = parseTemplate(opts.FS, manifest.Layouts.Base); err != nil {
		return nil, err
	}
	if s.docsLayout, err = parseTemplate(opts.FS, manifest.Layouts.Docs); err != nil {
		return nil, err
	}
	if s.notFound, err = parseTemplate(opts.FS, manifest.NotFoundPageSource); err != nil {
		return nil, err
	}

	if !opts.SkipScripts {
		s.assets, err = javascript.CompileTargets(opts.FS, manifest.JavascriptTargets, opts.Prod)
		if err != nil {
			return nil, errors.Wrap(err, "error compiling javascript")
		}
		s.scripts = javascript.Scripts(s.assets)
	}

	if err := s.setupRoutes(); err != nil {
		return nil, err
	}

	logger.Debug("site loaded",
		zap.Int("routes", len(s.routes)),
		zap.Strings("locales", s.catalog.Locales()),
		zap.Int("docs", len(s.docs.IDs())),
	)

	return s, nil
}

func parseTemplate(fsys fs.FS, name string) (*plush.Template, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading template %s", name)
	}
	t, err := plush.Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing template %s", name)
	}
	return t, nil
}

func (s *Site) setupRoutes() error {
	router := mux.NewRouter().StrictSlash(true)
	router.NotFoundHandler = http.HandlerFunc(s.Custom404Handler)
	router.Use(logging.RequestLogger(s.logger))
	s.router = router

	// Script bundles live under /static too, so they go first.
	for _, asset := range s.assets {
		router.Handle(asset.PublicPath, assetHandler(asset)).Methods(http.MethodGet)
	}

	staticFS, err := fs.Sub(s.fsys, "static")
	if err != nil {
		return errors.WithStack(err)
	}
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	for _, route := range s.manifest.Routes {
		switch route.TemplateType {
		case config.TemplateHome:
			s.registerPage(route.Path, homePage{site: s})
		case config.TemplatePlush:
			t, err := parseTemplate(s.fsys, route.Source)
			if err != nil {
				return err
			}
			s.registerPage(route.Path, plushPage{site: s, route: route, template: t})
		case config.TemplateMarkdown:
			if strings.Contains(route.Path, ":slug") {
				// Only ids with a default-locale source get routes; other
				// locales fall back to it.
				for _, id := range s.docs.IDs() {
					s.registerPage(strings.Replace(route.Path, ":slug", id, 1), docPage{site: s, id: id})
				}
				continue
			}
			s.registerPage(route.Path, docPage{site: s, id: route.Source})
		}
	}

	router.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		sitemap, err := utils.GenerateSitemapContent(s.manifest.Origin, s.routes, time.Now())
		if err != nil {
			s.fail(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write([]byte(xml.Header + sitemap))
	}).Methods(http.MethodGet)

	return nil
}

// registerPage adds path under every locale prefix.
func (s *Site) registerPage(path string, page Page) {
	for _, locale := range s.catalog.Locales() {
		localized := s.catalog.Prefix(locale, path)
		s.router.Handle(localized, s.DynamicHandler(locale, path, page)).
			Methods(http.MethodGet).
			Name(PageRoutePrefix + localized)
		s.routes = append(s.routes, localized)
	}
}

// DynamicHandler renders page for locale inside the base layout.
func (s *Site) DynamicHandler(locale, path string, page Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := s.catalog.Localizer(locale)

		meta, body, err := page.Render(loc)
		if err != nil {
			s.fail(w, r, err)
			return
		}

		pageHTML, err := s.renderLayout(loc, path, meta, body)
		if err != nil {
			s.fail(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(pageHTML)); err != nil {
			s.logger.Warn("error writing response", zap.String("path", r.URL.Path), zap.Error(err))
		}
	}
}

func (s *Site) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("error rendering page", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func assetHandler(asset javascript.Asset) http.HandlerFunc {
	contentType := "text/javascript; charset=utf-8"
	if asset.IsMap {
		contentType = "application/json"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		_, _ = w.Write(asset.Contents)
	}
}

// Router returns the HTTP handler for the site.
func (s *Site) Router() *mux.Router { return s.router }

// Routes returns every page path in registration order.
func (s *Site) Routes() []string {
	out := make([]string, len(s.routes))
	copy(out, s.routes)
	return out
}

func (s *Site) Assets() []javascript.Asset { return s.assets }

func (s *Site) Manifest() *config.SiteManifest { return s.manifest }

func (s *Site) Catalog() *i18n.Catalog { return s.catalog }

// FS is the site source filesystem.
func (s *Site) FS() fs.FS { return s.fsys }
