package retained

import (
	"slices"

	"github.com/agiangrant/carousel/dom"
)

// AddEventListener registers h for events of type t on this widget.
func (w *Widget) AddEventListener(t dom.EventType, h dom.Handler) {
	if h == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers[t] = append(w.handlers[t], h)
}

// ListenerCount returns how many handlers are registered for t.
func (w *Widget) ListenerCount(t dom.EventType) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.handlers[t])
}

func (w *Widget) listeners(t dom.EventType) []dom.Handler {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.handlers[t])
}

// Dispatch delivers e to this widget and, for bubbling events, to each
// ancestor from the target up to the root. Handlers run on the caller's
// goroutine without any widget lock held, so they may mutate the tree.
func (w *Widget) Dispatch(e dom.Event) {
	for target := w; target != nil; target = target.ParentWidget() {
		for _, h := range target.listeners(e.Type) {
			h(e)
		}
		if !e.Type.Bubbles() {
			return
		}
	}
}

// Click dispatches a click at the origin.
func (w *Widget) Click() {
	w.Dispatch(dom.Event{Type: dom.EventClick})
}

// MouseEnter dispatches a pointer-enter event.
func (w *Widget) MouseEnter() {
	w.Dispatch(dom.Event{Type: dom.EventMouseEnter})
}

// MouseLeave dispatches a pointer-leave event.
func (w *Widget) MouseLeave() {
	w.Dispatch(dom.Event{Type: dom.EventMouseLeave})
}

// Swipe dispatches touchstart at startX followed by touchend at endX.
func (w *Widget) Swipe(startX, endX float64) {
	w.Dispatch(dom.Event{Type: dom.EventTouchStart, X: startX})
	w.Dispatch(dom.Event{Type: dom.EventTouchEnd, X: endX})
}
