package sections

import (
	"fmt"
	"html"
	"html/template"
	"strings"
	"time"

	"github.com/hestjs/hestjs-website/content"
)

var tokenClasses = map[content.TokenKind]string{
	content.TokenKeyword:   "text-purple-400",
	content.TokenType:      "text-blue-400",
	content.TokenDecorator: "text-pink-400",
	content.TokenString:    "text-green-400",
	content.TokenName:      "text-yellow-400",
	content.TokenPlain:     "text-gray-300",
	content.TokenComment:   "text-gray-500",
}

// CodeExampleView is bound to "view" in code-example.plush.html.
type CodeExampleView struct {
	Title        string
	Subtitle     string
	HeaderReveal template.HTML
	BodyReveal   template.HTML

	CheckIcon template.HTML
	Bullets   []BulletView

	FileName string
	Lines    []CodeLineView
}

// BulletView is one prose point beside the snippet.
type BulletView struct {
	Title       string
	Description string
}

// CodeLineView is one snippet line: spacing classes and its highlighted spans.
type CodeLineView struct {
	Class string
	Spans template.HTML
}

// NewCodeExample builds the bullets and the pre-highlighted snippet for loc.
func NewCodeExample(loc Localizer) CodeExampleView {
	c := content.CodeExample

	bullets := make([]BulletView, 0, len(c.Bullets))
	for _, b := range c.Bullets {
		bullets = append(bullets, BulletView{Title: b.Title.In(loc), Description: b.Description.In(loc)})
	}

	lines := make([]CodeLineView, 0, len(c.Snippet.Lines))
	for _, l := range c.Snippet.Lines {
		lines = append(lines, CodeLineView{Class: lineClass(l), Spans: spans(l.Tokens)})
	}

	return CodeExampleView{
		Title:        c.Title.In(loc),
		Subtitle:     c.Subtitle.In(loc),
		HeaderReveal: onScroll(0),
		BodyReveal:   onScroll(200 * time.Millisecond),
		CheckIcon:    Icon("check-circle", "w-6 h-6 text-green-500 mt-1 flex-shrink-0"),
		Bullets:      bullets,
		FileName:     c.Snippet.FileName,
		Lines:        lines,
	}
}

func lineClass(l content.CodeLine) string {
	var classes []string
	if l.Indent > 0 {
		classes = append(classes, fmt.Sprintf("ml-%d", l.Indent*4))
	}
	if l.Gap > 0 {
		classes = append(classes, fmt.Sprintf("mb-%d", l.Gap))
	}
	return strings.Join(classes, " ")
}

// spans renders tokens as styled spans. This stands in for a highlighter.
func spans(tokens []content.Token) template.HTML {
	var sb strings.Builder
	for _, t := range tokens {
		class, ok := tokenClasses[t.Kind]
		if !ok {
			class = tokenClasses[content.TokenPlain]
		}
		sb.WriteString(`<span class="`)
		sb.WriteString(class)
		sb.WriteString(`">`)
		sb.WriteString(html.EscapeString(t.Text))
		sb.WriteString(`</span>`)
	}
	return template.HTML(sb.String())
}
