package sections

import (
	"html/template"
	"strconv"

	"github.com/hestjs/hestjs-website/content"
)

// FeaturesView is bound to "view" in features.plush.html.
type FeaturesView struct {
	Title        string
	Subtitle     string
	HeaderReveal template.HTML
	Cards        []FeatureCardView
}

// FeatureCardView is one card. Index is its position in the list.
type FeatureCardView struct {
	Index       string
	Title       string
	Description string
	Icon        template.HTML
	Accent      string
	Reveal      template.HTML
}

// NewFeatures renders the feature list in source order, each card delayed
// by its position.
func NewFeatures(loc Localizer) FeaturesView {
	c := content.Features

	cards := make([]FeatureCardView, 0, len(c.Items))
	for i, f := range c.Items {
		cards = append(cards, FeatureCardView{
			Index:       strconv.Itoa(i),
			Title:       f.Title.In(loc),
			Description: f.Description.In(loc),
			Icon:        Icon(f.Icon, "w-8 h-8"),
			Accent:      f.Accent,
			Reveal:      onScroll(RevealDelay(i)),
		})
	}

	return FeaturesView{
		Title:        c.Title.In(loc),
		Subtitle:     c.Subtitle.In(loc),
		HeaderReveal: onScroll(0),
		Cards:        cards,
	}
}
