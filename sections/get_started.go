package sections

import (
	"html/template"
	"time"

	"github.com/hestjs/hestjs-website/config"
	"github.com/hestjs/hestjs-website/content"
)

// GetStartedView is bound to "view" in get-started.plush.html.
type GetStartedView struct {
	Title string
	Body  string

	DocsText     string
	DocsHref     string
	TerminalIcon template.HTML
	ArrowIcon    template.HTML

	ExamplesText string
	ExamplesHref string
	DownloadIcon template.HTML

	TerminalComment string
	Commands        []string

	Reveal         template.HTML
	TerminalReveal template.HTML
}

// NewGetStarted builds the closing call to action. The terminal lines are
// shown as text only.
func NewGetStarted(loc Localizer, links config.Links) GetStartedView {
	c := content.GetStarted

	commands := make([]string, len(c.Commands))
	copy(commands, c.Commands)

	return GetStartedView{
		Title:           c.Title.In(loc),
		Body:            c.Body.In(loc),
		DocsText:        c.ReadDocs.In(loc),
		DocsHref:        loc.Path(links.Docs),
		TerminalIcon:    Icon("terminal", "w-5 h-5 mr-2"),
		ArrowIcon:       Icon("arrow-right", "w-4 h-4 ml-2"),
		ExamplesText:    c.DownloadExample.In(loc),
		ExamplesHref:    links.Examples,
		DownloadIcon:    Icon("download", "w-5 h-5 mr-2"),
		TerminalComment: c.TerminalComment.In(loc),
		Commands:        commands,
		Reveal:          onScroll(0),
		TerminalReveal:  onScroll(200 * time.Millisecond),
	}
}
