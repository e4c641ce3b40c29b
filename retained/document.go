package retained

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/agiangrant/carousel/dom"
)

// Document is a retained host: a body widget, a clock and the timers driven
// by it. Timer callbacks fire from Tick on the caller's goroutine, so a
// single-goroutine owner gets the same serialization a browser event loop
// gives.
type Document struct {
	clock  clockwork.Clock
	body   *Widget
	timers *TimerRegistry
}

var _ dom.Document = (*Document)(nil)

// NewDocument creates a document with an empty body. A nil clock uses the
// real wall clock.
func NewDocument(clock clockwork.Clock) *Document {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Document{
		clock:  clock,
		body:   NewWidget("body"),
		timers: NewTimerRegistry(),
	}
}

// Body returns the root widget.
func (d *Document) Body() *Widget {
	return d.body
}

// Clock returns the document's clock.
func (d *Document) Clock() clockwork.Clock {
	return d.clock
}

// Timers returns the timer registry.
func (d *Document) Timers() *TimerRegistry {
	return d.timers
}

// GetElementByID returns the first widget under the body with the given id,
// or nil. Detached widgets are not found.
func (d *Document) GetElementByID(id string) dom.Element {
	if id == "" {
		return nil
	}
	if w := d.body.Find(func(w *Widget) bool { return w.ElementID() == id }); w != nil {
		return w
	}
	return nil
}

// CreateElement returns a new detached widget.
func (d *Document) CreateElement(tag string) dom.Element {
	return NewWidget(tag)
}

// SetInterval registers fn to run every interval, measured on the document
// clock. It fires from Tick.
func (d *Document) SetInterval(interval time.Duration, fn func()) dom.Timer {
	return d.timers.Every(d.clock.Now(), interval, fn)
}

// Tick runs every timer callback due at the clock's current time and returns
// how many ran.
func (d *Document) Tick() int {
	return d.timers.Tick(d.clock.Now())
}
