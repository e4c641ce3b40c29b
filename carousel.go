// Package carousel implements a slide carousel on top of a dom host tree.
//
// A Carousel owns the index of the displayed slide. Every input (pager dots,
// prev/next buttons, swipes, the autoplay timer) ends in MoveTo, which
// resolves the target against the wrap policy and re-projects the index onto
// the elements: which slide is displayed, where the track sits, which dot is
// active and which buttons are visible.
//
//	doc := retained.NewDocument(nil)
//	doc.Body().AddChild(retained.SlideDeck("slider", "one", "two", "three"))
//
//	c, err := carousel.New(doc, carousel.Options{Pager: true, Controls: true})
//	if err != nil {
//		return err
//	}
//	c.MoveToNext()
package carousel

import (
	"log/slog"
	"sync"

	"github.com/agiangrant/carousel/dom"
)

// Carousel is a mounted carousel widget.
type Carousel struct {
	mu sync.Mutex

	opts Options
	log  *slog.Logger

	track    dom.Element
	slides   []dom.Element
	viewport dom.Element

	pager    *pager
	controls *controls
	swipes   *swipeTracker
	autoplay *autoplay
	styles   viewStyles

	index int
}

// New mounts a carousel on the element named by opts and shows the start
// slide. It fails with a ConfigurationError, before touching the tree, when
// the element is missing or has no slides.
func New(doc dom.Document, opts Options) (*Carousel, error) {
	if doc == nil {
		return nil, configError(ErrInvalidOption, "nil document")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	track := opts.Element
	if track == nil {
		track = doc.GetElementByID(opts.ElementID)
	}
	if track == nil {
		return nil, configError(ErrElementNotFound, "#"+opts.ElementID)
	}

	slides := track.Children()
	if len(slides) == 0 {
		return nil, configError(ErrNoSlides, "#"+opts.ElementID)
	}

	c := &Carousel{
		opts:   opts,
		log:    opts.Logger.With("element", opts.ElementID),
		track:  track,
		slides: slides,
		styles: newViewStyles(opts.Speed),
	}

	c.viewport = wrapTrack(doc, track)
	if opts.Pager {
		c.pager = buildPager(doc, c.viewport, len(slides), c.MoveTo)
	}
	if opts.Controls {
		c.controls = buildControls(doc, c.viewport, c.MoveToPrev, c.MoveToNext)
	}
	applyLayout(track, slides, opts.Speed)

	c.MoveTo(opts.StartSlide - 1)

	c.autoplay = newAutoplay(doc, opts.AutoplayInterval(), c.MoveToNext, c.log)
	c.autoplay.listen(c.viewport)
	if opts.Autoplay {
		c.autoplay.enable()
	}

	c.swipes = listenForSwipes(c.viewport, c.MoveToPrev, c.MoveToNext)

	c.log.Debug("carousel mounted",
		"slides", len(slides),
		"animation", opts.Animation,
		"infinite", opts.Infinite,
		"index", c.Index())
	return c, nil
}

// MoveTo shows the slide at target. Out-of-range targets wrap when
// Options.Infinite is set and are clamped otherwise. The view is re-applied
// even when the index does not change.
func (c *Carousel) MoveTo(target int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.index = resolveIndex(target, len(c.slides), c.opts.Infinite)
	c.apply(project(c.opts, len(c.slides), c.index))

	c.log.Debug("moved", "target", target, "index", c.index)
}

// MoveToPrev shows the previous slide.
func (c *Carousel) MoveToPrev() {
	c.MoveTo(c.Index() - 1)
}

// MoveToNext shows the next slide.
func (c *Carousel) MoveToNext() {
	c.MoveTo(c.Index() + 1)
}

// resolveIndex applies the wrap-or-clamp policy. n must be positive.
func resolveIndex(target, n int, infinite bool) int {
	switch {
	case target > n-1 && infinite:
		return 0
	case target < 0 && infinite:
		return n - 1
	case target > n-1:
		return n - 1
	case target < 0:
		return 0
	default:
		return target
	}
}

// Index returns the 0-based index of the displayed slide.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Len returns the number of slides.
func (c *Carousel) Len() int {
	return len(c.slides)
}

// View returns the projection of the current index.
func (c *Carousel) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return project(c.opts, len(c.slides), c.index)
}

// Options returns the resolved options the carousel was built with.
func (c *Carousel) Options() Options {
	return c.opts
}

// Viewport returns the wrapper element inserted around the track.
func (c *Carousel) Viewport() dom.Element {
	return c.viewport
}

// Track returns the slide container the carousel was mounted on.
func (c *Carousel) Track() dom.Element {
	return c.track
}

// Slides returns the slide elements in order.
func (c *Carousel) Slides() []dom.Element {
	return append([]dom.Element(nil), c.slides...)
}

// StartAutoplay starts advancing every Options.AutoplaySpeed milliseconds.
// While the pointer is over the viewport the timer stays paused.
func (c *Carousel) StartAutoplay() {
	c.autoplay.enable()
}

// StopAutoplay cancels the autoplay timer until StartAutoplay is called.
func (c *Carousel) StopAutoplay() {
	c.autoplay.disable()
}

// Autoplaying reports whether an autoplay timer is live.
func (c *Carousel) Autoplaying() bool {
	return c.autoplay.running()
}

// Close releases the autoplay timer. The elements stay as they are.
func (c *Carousel) Close() {
	c.autoplay.disable()
}
