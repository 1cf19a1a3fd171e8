package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateSitemapContentListsRoutes(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	out, err := GenerateSitemapContent("https://hestjs.dev", []string{"/", "/zh-CN/", "/docs/intro"}, day)
	require.NoError(t, err)

	require.Contains(t, out, "<loc>https://hestjs.dev/</loc>")
	require.Contains(t, out, "<loc>https://hestjs.dev/zh-CN/</loc>")
	require.Contains(t, out, "<loc>https://hestjs.dev/docs/intro</loc>")
	require.Equal(t, 3, strings.Count(out, "<lastmod>2026-10-15</lastmod>"))
	require.Equal(t, 1, strings.Count(out, "<priority>"))
}

func TestGenerateSitemapsWritesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, GenerateSitemaps(dir, "https://hestjs.dev", []string{"/"}, time.Time{}))

	data, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "<?xml"))
	require.NotContains(t, string(data), "<lastmod>")
}
