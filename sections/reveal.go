package sections

import (
	"fmt"
	"html/template"
	"time"
)

const (
	// RevealStagger is the delay added per feature card.
	RevealStagger = 100 * time.Millisecond
	// CopyResetDelay is how long the hero's copied mark stays visible.
	CopyResetDelay = 2 * time.Second

	revealOnLoad   = "load"
	revealOnScroll = "scroll"
)

// RevealDelay is the animation delay of the item at index in a staggered list.
func RevealDelay(index int) time.Duration {
	if index < 0 {
		index = 0
	}
	return time.Duration(index) * RevealStagger
}

// revealAttrs renders the attributes the client reveal script looks for.
// Scroll reveals fire once when the element first enters the viewport; load
// reveals fire once after the page loads.
func revealAttrs(mode string, delay time.Duration) template.HTML {
	return template.HTML(fmt.Sprintf(`data-reveal="%s" data-reveal-delay="%d"`, mode, delay.Milliseconds()))
}

func onScroll(delay time.Duration) template.HTML { return revealAttrs(revealOnScroll, delay) }

func onLoad(delay time.Duration) template.HTML { return revealAttrs(revealOnLoad, delay) }
