package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hestjs/hestjs-website/handlers"
	"github.com/hestjs/hestjs-website/site"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func buildTestSite(t *testing.T) string {
	t.Helper()
	logger := zaptest.NewLogger(t)

	s, err := handlers.SetupRouter(handlers.Options{FS: site.FS(), Logger: logger})
	require.NoError(t, err)

	out := t.TempDir()
	require.NoError(t, buildSite(s, out, logger))
	return out
}

func TestBuildSiteWritesEveryLocale(t *testing.T) {
	t.Parallel()
	out := buildTestSite(t)

	for _, p := range []string{
		"index.html",
		"zh-CN/index.html",
		"docs/intro/index.html",
		"zh-CN/docs/getting-started/quickstart/index.html",
		"404.html",
		"zh-CN/404.html",
		"sitemap.xml",
		"static/css/site.css",
	} {
		require.FileExists(t, filepath.Join(out, filepath.FromSlash(p)))
	}

	zh, err := os.ReadFile(filepath.Join(out, "zh-CN", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(zh), "开始使用")

	notFound, err := os.ReadFile(filepath.Join(out, "zh-CN", "404.html"))
	require.NoError(t, err)
	require.Contains(t, string(notFound), "找不到页面")

	scripts, err := filepath.Glob(filepath.Join(out, "static", "js", "main_*.js"))
	require.NoError(t, err)
	require.Len(t, scripts, 1)
	require.FileExists(t, scripts[0]+".map")

	sitemap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	require.NoError(t, err)
	require.Contains(t, string(sitemap), "https://hestjs.dev/zh-CN/docs/intro")
	require.NotContains(t, string(sitemap), "fundamentals/services")
}

func TestPreviewServesBuild(t *testing.T) {
	t.Parallel()
	out := buildTestSite(t)
	router := previewRouter(out)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	rec := get("/zh-CN/docs/intro/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), `lang="zh-CN"`))

	rec = get("/zh-CN/missing/")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "找不到页面")

	rec = get("/missing")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Page Not Found")
}
