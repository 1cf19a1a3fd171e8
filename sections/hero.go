package sections

import (
	"html/template"
	"strconv"
	"time"

	"github.com/hestjs/hestjs-website/config"
	"github.com/hestjs/hestjs-website/content"
)

// HeroView is bound to "view" in hero.plush.html. The copy button reads
// InstallCommand and CopyResetMS from its data attributes.
type HeroView struct {
	BrandLead        string
	BrandTail        string
	Headline         string
	SubtitleLead     string
	SubtitleEmphasis string
	SubtitleRest     string

	InstallCommand string
	CopyHint       string
	Copied         string
	CopyResetMS    string

	GetStarted     string
	GetStartedHref string
	PlayIcon       template.HTML

	Badges     []BadgeView
	ScrollHint string
	ScrollIcon template.HTML

	BrandReveal    template.HTML
	HeadlineReveal template.HTML
	SubtitleReveal template.HTML
	ActionsReveal  template.HTML
	BadgesReveal   template.HTML
	HintReveal     template.HTML
}

// BadgeView is one badge under the call to action.
type BadgeView struct {
	Icon  template.HTML
	Label string
}

// NewHero builds the hero for loc. The call to action points at the docs
// entry in the same locale.
func NewHero(loc Localizer, links config.Links) HeroView {
	c := content.Hero

	badges := make([]BadgeView, 0, len(c.Badges))
	for _, b := range c.Badges {
		badges = append(badges, BadgeView{
			Icon:  Icon(b.Icon, "w-4 h-4 mr-1 "+b.Accent),
			Label: b.Label.In(loc),
		})
	}

	return HeroView{
		BrandLead:        c.BrandLead,
		BrandTail:        c.BrandTail,
		Headline:         c.Headline.In(loc),
		SubtitleLead:     c.SubtitleLead.In(loc),
		SubtitleEmphasis: c.SubtitleEmphasis.In(loc),
		SubtitleRest:     c.SubtitleRest.In(loc),

		InstallCommand: c.InstallCommand,
		CopyHint:       c.CopyHint.In(loc),
		Copied:         c.Copied.In(loc),
		CopyResetMS:    strconv.FormatInt(CopyResetDelay.Milliseconds(), 10),

		GetStarted:     c.GetStarted.In(loc),
		GetStartedHref: loc.Path(links.Docs),
		PlayIcon:       Icon("play", "w-5 h-5 mr-2"),

		Badges:     badges,
		ScrollHint: c.ScrollHint.In(loc),
		ScrollIcon: Icon("arrow-down", "w-6 h-6 mx-auto text-gray-400"),

		BrandReveal:    onLoad(200 * time.Millisecond),
		HeadlineReveal: onLoad(400 * time.Millisecond),
		SubtitleReveal: onLoad(500 * time.Millisecond),
		ActionsReveal:  onLoad(600 * time.Millisecond),
		BadgesReveal:   onLoad(800 * time.Millisecond),
		HintReveal:     onLoad(time.Second),
	}
}
