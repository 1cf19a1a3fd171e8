package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestLoadManifestAppliesDefaults(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		ManifestFile: &fstest.MapFile{Data: []byte(`
title: HestJS
origin: https://example.com/
locales: [en, zh-CN]
routes:
  - path: /
    template_type: HOME
`)},
	}

	m, err := LoadManifest(fsys)
	require.NoError(t, err)
	require.Equal(t, "en", m.DefaultLocale)
	require.Equal(t, "https://example.com", m.Origin)
	require.Equal(t, "/docs/intro", m.Links.Docs)
	require.Equal(t, "tutorialSidebar", m.Sidebar.Name)
	require.Equal(t, "templates/layouts/base.plush.html", m.Layouts.Base)
}

func TestLoadManifestRejectsUnknownTemplateType(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		ManifestFile: &fstest.MapFile{Data: []byte(`
routes:
  - path: /
    template_type: JSX
`)},
	}

	_, err := LoadManifest(fsys)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported template type")
}

func TestValidateRequiresDefaultLocaleInLocales(t *testing.T) {
	t.Parallel()

	m := SiteManifest{DefaultLocale: "en", Locales: []string{"zh-CN"}}
	require.Error(t, m.Validate())
}

func TestParseEnvReadsVariables(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("APP_ORIGIN", "https://hest.example")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	require.Equal(t, "4000", cfg.Port)
	require.Equal(t, "https://hest.example", cfg.Origin)
	require.True(t, cfg.IsProd())
}
