package sections

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hestjs/hestjs-website/config"
	"github.com/hestjs/hestjs-website/content"
	"github.com/hestjs/hestjs-website/site"
	"github.com/stretchr/testify/require"
)

// stubLocalizer answers from a fixed table and prefixes paths with /xx.
type stubLocalizer map[string]string

func (s stubLocalizer) T(key, fallback string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return fallback
}

func (s stubLocalizer) Path(p string) string {
	if strings.HasPrefix(p, "https://") {
		return p
	}
	return "/xx" + p
}

var testLinks = config.Links{Docs: "/docs/intro", Examples: "https://example.com/demo"}

func TestComposeOrder(t *testing.T) {
	t.Parallel()

	var names []string
	for _, s := range Compose(stubLocalizer{}, testLinks) {
		names = append(names, s.Name)
	}
	require.Equal(t, Order, names)
}

func TestRevealDelay(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Duration(0), RevealDelay(0))
	require.Equal(t, 300*time.Millisecond, RevealDelay(3))
	require.Equal(t, time.Duration(0), RevealDelay(-2))
	require.Equal(t, `data-reveal="scroll" data-reveal-delay="500"`, string(onScroll(RevealDelay(5))))
}

func TestHeroUsesLocalizedCopyAndPaths(t *testing.T) {
	t.Parallel()

	hero := NewHero(stubLocalizer{content.Hero.GetStarted.Key: "Los"}, testLinks)
	require.Equal(t, "Los", hero.GetStarted)
	require.Equal(t, "/xx/docs/intro", hero.GetStartedHref)
	require.Equal(t, "2000", hero.CopyResetMS)
	require.Equal(t, content.InstallCommand, hero.InstallCommand)
	require.Equal(t, content.Hero.Copied.Default, hero.Copied)
	require.Len(t, hero.Badges, len(content.Hero.Badges))
}

func TestFeatureCardsStagger(t *testing.T) {
	t.Parallel()

	view := NewFeatures(stubLocalizer{})
	require.Len(t, view.Cards, 6)
	require.Equal(t, "Modular by Design", view.Cards[0].Title)
	require.Equal(t, "Developer Freedom", view.Cards[5].Title)
	require.Contains(t, string(view.Cards[2].Reveal), `data-reveal-delay="200"`)
}

func TestGetStartedLinks(t *testing.T) {
	t.Parallel()

	view := NewGetStarted(stubLocalizer{}, testLinks)
	require.Equal(t, "/xx/docs/intro", view.DocsHref)
	require.Equal(t, "https://example.com/demo", view.ExamplesHref)
	require.Equal(t, content.InstallCommand, view.Commands[0])
}

func TestCodeExampleEscapesTokens(t *testing.T) {
	t.Parallel()

	out := string(spans([]content.Token{{Kind: content.TokenString, Text: `"<b>"`}}))
	require.NotContains(t, out, "<b>")
	require.Contains(t, out, "text-green-400")
}

func TestRendererRendersEverySection(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(site.FS(), "templates/sections")
	require.NoError(t, err)

	parts, err := r.RenderAll(Compose(stubLocalizer{}, testLinks))
	require.NoError(t, err)
	require.Len(t, parts, len(Order))

	for i, part := range parts {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(part)))
		require.NoError(t, err)
		require.Equal(t, Order[i], doc.Find("section").First().AttrOr("data-section", ""))
	}

	_, err = r.Render(Section{Name: "pricing"})
	require.Error(t, err)
}

func TestIconUnknownNameIsEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, string(Icon("nope", "")))
	require.Contains(t, string(Icon("zap", "w-4")), `class="w-4"`)
}
