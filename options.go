package carousel

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/agiangrant/carousel/dom"
)

// AnimationStyle selects how the current slide is revealed.
type AnimationStyle string

const (
	// AnimationFade hides every slide but the current one and fades it in.
	AnimationFade AnimationStyle = "fade"

	// AnimationSlide moves the whole track so the current slide fills the viewport.
	AnimationSlide AnimationStyle = "slide-translate"

	// animationSlick is the name older configurations use for AnimationSlide.
	animationSlick AnimationStyle = "slick"
)

const (
	DefaultElementID     = "slider"
	DefaultSpeed         = 500  // ms
	DefaultStartSlide    = 1    // 1-based
	DefaultAutoplaySpeed = 5000 // ms

	// SwipeThreshold is the horizontal travel, in pixels, a touch must cover
	// to count as a swipe.
	SwipeThreshold = 100
)

// Options configures a carousel. Zero values select the defaults, so a
// partially filled Options (or a TOML file naming only a few keys) is valid.
type Options struct {
	// Element is the container whose direct children are the slides. When
	// nil, the element with id ElementID is looked up.
	Element dom.Element `toml:"-"`

	// ElementID is the fallback lookup id.
	ElementID string `toml:"element_id"`

	// Speed is the transition and animation duration in milliseconds.
	Speed int `toml:"speed"`

	// Controls shows prev/next buttons.
	Controls bool `toml:"controls"`

	// Pager shows one indicator dot per slide.
	Pager bool `toml:"pager"`

	// Animation is "fade" or "slide-translate" ("slick" is accepted).
	Animation AnimationStyle `toml:"animation"`

	// Infinite wraps navigation past either end to the opposite end.
	Infinite bool `toml:"infinite"`

	// StartSlide is the 1-based slide shown first.
	StartSlide int `toml:"start_slide"`

	// Autoplay advances to the next slide every AutoplaySpeed milliseconds
	// while the pointer is outside the viewport.
	Autoplay bool `toml:"autoplay"`

	// AutoplaySpeed is the autoplay interval in milliseconds.
	AutoplaySpeed int `toml:"autoplay_speed"`

	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger `toml:"-"`
}

// DefaultOptions returns the options a carousel uses when none are given.
func DefaultOptions() Options {
	return Options{
		ElementID:     DefaultElementID,
		Speed:         DefaultSpeed,
		Animation:     AnimationFade,
		StartSlide:    DefaultStartSlide,
		AutoplaySpeed: DefaultAutoplaySpeed,
	}
}

// withDefaults fills zero fields from DefaultOptions and normalizes aliases.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ElementID == "" {
		o.ElementID = def.ElementID
	}
	if o.Speed == 0 {
		o.Speed = def.Speed
	}
	if o.Animation == "" {
		o.Animation = def.Animation
	}
	if o.Animation == animationSlick {
		o.Animation = AnimationSlide
	}
	if o.StartSlide == 0 {
		o.StartSlide = def.StartSlide
	}
	if o.AutoplaySpeed == 0 {
		o.AutoplaySpeed = def.AutoplaySpeed
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Validate reports the first invalid field as a ConfigurationError.
// Zero values are valid; they mean "default".
func (o Options) Validate() error {
	switch o.Animation {
	case "", AnimationFade, AnimationSlide, animationSlick:
	default:
		return configError(ErrInvalidOption, fmt.Sprintf("unknown animation %q", o.Animation))
	}
	if o.Speed < 0 {
		return configError(ErrInvalidOption, fmt.Sprintf("speed %d must not be negative", o.Speed))
	}
	if o.AutoplaySpeed < 0 {
		return configError(ErrInvalidOption, fmt.Sprintf("autoplay_speed %d must not be negative", o.AutoplaySpeed))
	}
	if o.StartSlide < 0 {
		return configError(ErrInvalidOption, fmt.Sprintf("start_slide %d must not be negative", o.StartSlide))
	}
	return nil
}

// Resolved returns the options with defaults applied, as New would use them.
func (o Options) Resolved() Options {
	return o.withDefaults()
}

// SpeedDuration returns Speed as a time.Duration.
func (o Options) SpeedDuration() time.Duration {
	return time.Duration(o.Speed) * time.Millisecond
}

// AutoplayInterval returns AutoplaySpeed as a time.Duration.
func (o Options) AutoplayInterval() time.Duration {
	return time.Duration(o.AutoplaySpeed) * time.Millisecond
}
