// Package dom describes the host element tree a widget is mounted into.
//
// Implementations exist for the browser (internal/jsdom, built with
// GOOS=js GOARCH=wasm) and for an in-memory retained tree (package retained).
// Callbacks registered here are expected to be delivered one at a time; hosts
// serialize them the way a browser event loop does.
package dom

import (
	"time"

	"github.com/agiangrant/carousel/tw"
)

// EventType identifies the kind of event.
type EventType uint8

const (
	EventClick EventType = iota + 1
	EventTouchStart
	EventTouchEnd
	EventMouseEnter
	EventMouseLeave
)

var eventNames = map[EventType]string{
	EventClick:      "click",
	EventTouchStart: "touchstart",
	EventTouchEnd:   "touchend",
	EventMouseEnter: "mouseenter",
	EventMouseLeave: "mouseleave",
}

// String returns the DOM event name ("click", "touchstart", ...).
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// Bubbles reports whether the event propagates from the target to its ancestors.
// Pointer enter/leave are delivered to the target only, as in the DOM.
func (t EventType) Bubbles() bool {
	return t != EventMouseEnter && t != EventMouseLeave
}

// Event is a host event. X and Y are client coordinates; for touch events they
// come from the first changed touch.
type Event struct {
	Type EventType
	X, Y float64
}

// Handler is a callback for host events.
type Handler func(Event)

// Element is a node in the host tree.
type Element interface {
	// Tag returns the element's tag name in lower case ("div", "button").
	Tag() string

	// Parent returns the parent element, or nil for a detached or root element.
	Parent() Element

	// Children returns the direct child elements in document order.
	Children() []Element

	// AppendChild moves child to the end of this element's children.
	AppendChild(child Element)

	// InsertBefore moves child in front of ref, which must be a child of this
	// element. A nil ref appends.
	InsertBefore(child, ref Element)

	// Marker classes (the DOM classList).
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	// SetText replaces the element's text content.
	SetText(text string)

	// ApplyStyle writes every set field of style to the element's inline
	// style. Unset fields keep their current value.
	ApplyStyle(style tw.StyleProperties)

	// AddEventListener registers h for events of type t on this element.
	AddEventListener(t EventType, h Handler)
}

// Timer is a live repeating timer.
type Timer interface {
	// Stop cancels the timer. Stopping twice is a no-op.
	Stop()
}

// Document creates and looks up elements and owns the host's timers.
type Document interface {
	// GetElementByID returns the element with the given id, or nil.
	GetElementByID(id string) Element

	// CreateElement returns a new detached element.
	CreateElement(tag string) Element

	// SetInterval calls fn every interval until the returned Timer is stopped.
	SetInterval(interval time.Duration, fn func()) Timer
}
