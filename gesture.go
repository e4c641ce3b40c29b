package carousel

import "github.com/agiangrant/carousel/dom"

// swipeTracker turns a touchstart/touchend pair into one navigation call.
type swipeTracker struct {
	startX  float64
	started bool
	onPrev  func()
	onNext  func()
}

func listenForSwipes(el dom.Element, onPrev, onNext func()) *swipeTracker {
	s := &swipeTracker{onPrev: onPrev, onNext: onNext}
	el.AddEventListener(dom.EventTouchStart, s.touchStart)
	el.AddEventListener(dom.EventTouchEnd, s.touchEnd)
	return s
}

func (s *swipeTracker) touchStart(e dom.Event) {
	s.startX = e.X
	s.started = true
}

// touchEnd navigates when the finger travelled at least SwipeThreshold
// pixels: rightwards shows the previous slide, leftwards the next one.
func (s *swipeTracker) touchEnd(e dom.Event) {
	if !s.started {
		return
	}
	s.started = false

	delta := e.X - s.startX
	switch {
	case delta >= SwipeThreshold:
		s.onPrev()
	case delta <= -SwipeThreshold:
		s.onNext()
	}
}
