package cmd

import (
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/hestjs/hestjs-website/handlers"
	"github.com/hestjs/hestjs-website/javascript"
	"github.com/hestjs/hestjs-website/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static version of the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")
		if outDir == "" {
			outDir = env.PublicDir
		}

		logger.Info("building static site", zap.String("out", outDir), zap.Bool("prod", env.IsProd()))

		s, err := loadSite(false)
		if err != nil {
			return errors.Wrap(err, "error setting up router")
		}

		if err := buildSite(s, outDir, logger); err != nil {
			return err
		}

		logger.Info("static site generated", zap.String("out", outDir))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("out", "o", "", "Output directory (defaults to $PUBLIC_DIR or ./public)")
}

// buildSite renders every page route of s into outDir along with the static
// files, script bundles, 404 pages and sitemap.
func buildSite(s *handlers.Site, outDir string, logger *zap.Logger) error {
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return errors.Wrap(err, "error creating output directory")
	}

	if err := copyStatic(s.FS(), outDir); err != nil {
		return errors.Wrap(err, "error copying static files")
	}

	if err := javascript.WriteAssets(outDir, s.Assets()); err != nil {
		return errors.Wrap(err, "error writing scripts")
	}

	server := httptest.NewServer(s.Router())
	defer server.Close()

	var routes []string
	err := s.Router().Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		if !strings.HasPrefix(route.GetName(), handlers.PageRoutePrefix) {
			return nil
		}
		path, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}

		filePath, err := generateStaticPage(server, outDir, path)
		if err != nil {
			return errors.Wrapf(err, "error generating static page for %s", path)
		}
		logger.Debug("generated page", zap.String("file", filePath))

		routes = append(routes, path)
		return nil
	})
	if err != nil {
		return err
	}

	for _, locale := range s.Catalog().Locales() {
		page, err := s.RenderNotFound(locale)
		if err != nil {
			return err
		}
		dest := filepath.Join(outDir, filepath.FromSlash(strings.TrimPrefix(s.Catalog().Prefix(locale, "/404.html"), "/")))
		if err := writeFile(dest, []byte(page)); err != nil {
			return err
		}
	}

	if err := utils.GenerateSitemaps(outDir, s.Manifest().Origin, routes, time.Now()); err != nil {
		return errors.Wrap(err, "error generating sitemap")
	}

	logger.Info("pages generated", zap.Int("count", len(routes)))
	return nil
}

func generateStaticPage(server *httptest.Server, outDir, route string) (string, error) {
	resp, err := http.Get(server.URL + route)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.WithStack(err)
	}

	filePath := filepath.Join(outDir, filepath.FromSlash(strings.TrimPrefix(route, "/")), "index.html")
	return filePath, writeFile(filePath, body)
}

// copyStatic copies the site's static/ tree to outDir/static.
func copyStatic(fsys fs.FS, outDir string) error {
	return fs.WalkDir(fsys, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		input, err := fs.ReadFile(fsys, path)
		if err != nil {
			return errors.WithStack(err)
		}
		return writeFile(filepath.Join(outDir, filepath.FromSlash(path)), input)
	})
}

func writeFile(dst string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(dst, data, 0644))
}
