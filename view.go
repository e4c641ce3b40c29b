package carousel

import (
	"fmt"

	"github.com/agiangrant/carousel/tw"
)

// View is the visual state of a carousel: a pure function of the index and
// the options. apply writes it to the elements.
type View struct {
	Index     int
	Animation AnimationStyle

	// Displayed reports, per slide, whether it is the one in view.
	Displayed []bool

	// Offset is the track translation in percent of the track width
	// (slide-translate only; zero for fade).
	Offset float64

	// ActiveDot is the pager dot marked active, or -1 without a pager.
	ActiveDot int

	PrevVisible bool
	NextVisible bool
}

func project(opts Options, n, index int) View {
	v := View{
		Index:       index,
		Animation:   opts.Animation,
		Displayed:   make([]bool, n),
		ActiveDot:   -1,
		PrevVisible: opts.Infinite || index > 0,
		NextVisible: opts.Infinite || index < n-1,
	}
	v.Displayed[index] = true
	if opts.Animation == AnimationSlide {
		v.Offset = float64(index) * (100 / float64(n))
	}
	if opts.Pager {
		v.ActiveDot = index
	}
	return v
}

// viewStyles are the styles apply toggles between, resolved once per carousel.
type viewStyles struct {
	fadeHidden tw.StyleProperties
	fadeShown  tw.StyleProperties
	hidden     tw.StyleProperties
	shown      tw.StyleProperties
}

func newViewStyles(speed int) viewStyles {
	fade := fmt.Sprintf("animate-[fade_%dms]", speed)
	return viewStyles{
		fadeHidden: tw.Parse(fade + " hidden"),
		fadeShown:  tw.Parse(fade + " block"),
		hidden:     tw.Parse("hidden"),
		shown:      tw.Parse("block"),
	}
}

// translateStyle moves the track left by offset percent.
func translateStyle(offset float64) tw.StyleProperties {
	shift := -offset
	if shift == 0 {
		shift = 0 // no "-0%"
	}
	return tw.Parse(fmt.Sprintf("translate-x-[%s%%]", tw.FormatNumber(shift)))
}

// apply writes v to the elements. Callers hold c.mu.
func (c *Carousel) apply(v View) {
	switch v.Animation {
	case AnimationFade:
		for i, slide := range c.slides {
			if v.Displayed[i] {
				slide.ApplyStyle(c.styles.fadeShown)
			} else {
				slide.ApplyStyle(c.styles.fadeHidden)
			}
		}
	case AnimationSlide:
		c.track.ApplyStyle(translateStyle(v.Offset))
	}

	if v.ActiveDot >= 0 {
		c.pager.activate(v.ActiveDot)
	}
	c.controls.show(v.PrevVisible, v.NextVisible, c.styles)
}
