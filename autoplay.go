package carousel

import (
	"log/slog"
	"sync"
	"time"

	"github.com/agiangrant/carousel/dom"
)

// autoplay owns at most one live interval timer. It runs while enabled and
// the pointer is outside the viewport; every restart begins a full interval.
type autoplay struct {
	mu sync.Mutex

	doc      dom.Document
	interval time.Duration
	advance  func()
	log      *slog.Logger

	enabled bool
	hovered bool
	timer   dom.Timer
}

func newAutoplay(doc dom.Document, interval time.Duration, advance func(), log *slog.Logger) *autoplay {
	return &autoplay{
		doc:      doc,
		interval: interval,
		advance:  advance,
		log:      log,
	}
}

// listen pauses on pointer enter and resumes on pointer leave.
func (a *autoplay) listen(viewport dom.Element) {
	viewport.AddEventListener(dom.EventMouseEnter, func(dom.Event) { a.hover(true) })
	viewport.AddEventListener(dom.EventMouseLeave, func(dom.Event) { a.hover(false) })
}

func (a *autoplay) enable() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = true
	a.syncLocked()
}

func (a *autoplay) disable() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = false
	a.syncLocked()
}

func (a *autoplay) hover(over bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hovered = over
	a.syncLocked()
}

func (a *autoplay) running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timer != nil
}

// syncLocked cancels the live timer, then starts a fresh one if autoplay
// should be running. Leaving the viewport therefore never stacks timers.
func (a *autoplay) syncLocked() {
	a.stopLocked()
	if a.enabled && !a.hovered {
		a.timer = a.doc.SetInterval(a.interval, a.advance)
		a.log.Debug("autoplay started", "interval", a.interval)
	}
}

func (a *autoplay) stopLocked() {
	if a.timer == nil {
		return
	}
	a.timer.Stop()
	a.timer = nil
	a.log.Debug("autoplay stopped")
}
