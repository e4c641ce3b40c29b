// Package retained provides an in-memory element tree implementing the dom
// host contract.
//
// Widgets keep their structure, marker classes, inline style and listeners in
// memory, so a widget mounted on a retained Document can be driven and
// inspected without a browser: tests dispatch events and advance a clock, the
// terminal preview renders the tree after every change.
package retained

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/agiangrant/carousel/dom"
	"github.com/agiangrant/carousel/tw"
)

// WidgetID uniquely identifies a widget for the lifetime of the process.
type WidgetID uint64

var nextWidgetID atomic.Uint64

func newWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// Widget is an element in the retained tree.
// Widgets are safe for concurrent property updates.
type Widget struct {
	mu sync.RWMutex

	id        WidgetID
	tag       string
	elementID string
	parent    *Widget
	children  []*Widget

	classes []string
	style   tw.StyleProperties
	text    string

	handlers map[dom.EventType][]dom.Handler

	// Bumped on every mutation; renderers compare it to skip redraws.
	version atomic.Uint64
}

var _ dom.Element = (*Widget)(nil)

// NewWidget creates a detached widget with the given tag.
func NewWidget(tag string) *Widget {
	return &Widget{
		id:       newWidgetID(),
		tag:      strings.ToLower(tag),
		handlers: make(map[dom.EventType][]dom.Handler),
	}
}

// ID returns the widget's unique identifier.
func (w *Widget) ID() WidgetID {
	return w.id
}

// Tag returns the widget's tag name.
func (w *Widget) Tag() string {
	return w.tag
}

// Version returns a counter that changes whenever the widget is mutated.
func (w *Widget) Version() uint64 {
	return w.version.Load()
}

func (w *Widget) touch() {
	w.version.Add(1)
}

// SetElementID sets the id attribute used by Document.GetElementByID.
func (w *Widget) SetElementID(id string) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.elementID = id
	w.touch()
	return w
}

// ElementID returns the id attribute.
func (w *Widget) ElementID() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.elementID
}

// ============================================================================
// Tree Structure
// ============================================================================

// Parent returns the parent element, or nil if the widget is detached.
func (w *Widget) Parent() dom.Element {
	if p := w.ParentWidget(); p != nil {
		return p
	}
	return nil
}

// ParentWidget returns the parent widget, or nil if detached.
func (w *Widget) ParentWidget() *Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.parent
}

// Children returns the child elements in order.
func (w *Widget) Children() []dom.Element {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]dom.Element, len(w.children))
	for i, c := range w.children {
		result[i] = c
	}
	return result
}

// ChildWidgets returns a copy of the widget's children slice.
func (w *Widget) ChildWidgets() []*Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.children)
}

// AppendChild moves child to the end of this widget's children.
func (w *Widget) AppendChild(child dom.Element) {
	w.InsertBefore(child, nil)
}

// AddChild appends child and returns w for chaining.
func (w *Widget) AddChild(child *Widget) *Widget {
	w.InsertBefore(child, nil)
	return w
}

// InsertBefore moves child in front of ref. A nil ref appends. A ref that is
// not a child of w also appends, mirroring a lenient DOM.
func (w *Widget) InsertBefore(child, ref dom.Element) {
	c := mustWidget(child)
	if c == w {
		panic("retained: cannot insert a widget into itself")
	}
	c.RemoveFromParent()

	var r *Widget
	if ref != nil {
		r = mustWidget(ref)
	}

	w.mu.Lock()
	index := len(w.children)
	if r != nil {
		if i := slices.Index(w.children, r); i >= 0 {
			index = i
		}
	}
	w.children = slices.Insert(w.children, index, c)
	w.touch()
	w.mu.Unlock()

	c.mu.Lock()
	c.parent = w
	c.touch()
	c.mu.Unlock()
}

// RemoveChild removes a child by reference.
func (w *Widget) RemoveChild(child *Widget) bool {
	w.mu.Lock()
	i := slices.Index(w.children, child)
	if i < 0 {
		w.mu.Unlock()
		return false
	}
	w.children = slices.Delete(w.children, i, i+1)
	w.touch()
	w.mu.Unlock()

	child.mu.Lock()
	child.parent = nil
	child.touch()
	child.mu.Unlock()
	return true
}

// RemoveFromParent detaches this widget from its parent.
func (w *Widget) RemoveFromParent() {
	if parent := w.ParentWidget(); parent != nil {
		parent.RemoveChild(w)
	}
}

func mustWidget(e dom.Element) *Widget {
	w, ok := e.(*Widget)
	if !ok {
		panic(fmt.Sprintf("retained: foreign element %T", e))
	}
	return w
}

// ============================================================================
// Classes, Text and Style
// ============================================================================

// AddClass adds a marker class. Adding a class twice is a no-op.
func (w *Widget) AddClass(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !slices.Contains(w.classes, name) {
		w.classes = append(w.classes, name)
		w.touch()
	}
}

// RemoveClass removes a marker class if present.
func (w *Widget) RemoveClass(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i := slices.Index(w.classes, name); i >= 0 {
		w.classes = slices.Delete(w.classes, i, i+1)
		w.touch()
	}
}

// HasClass reports whether the widget carries the marker class.
func (w *Widget) HasClass(name string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Contains(w.classes, name)
}

// Classes returns the marker classes as a space-separated string.
func (w *Widget) Classes() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return strings.Join(w.classes, " ")
}

// SetClasses adds every class in the string and applies the utilities among
// them as inline style, the way a page with Tailwind's stylesheet would.
func (w *Widget) SetClasses(classes string) *Widget {
	for _, name := range strings.Fields(classes) {
		w.AddClass(name)
	}
	w.ApplyStyle(tw.Parse(classes))
	return w
}

// SetText replaces the text content.
func (w *Widget) SetText(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.text != text {
		w.text = text
		w.touch()
	}
}

// Text returns the text content.
func (w *Widget) Text() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.text
}

// ApplyStyle merges the set fields of style into the inline style.
func (w *Widget) ApplyStyle(style tw.StyleProperties) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.style.Merge(style)
	w.touch()
}

// Style returns a copy of the inline style.
func (w *Widget) Style() tw.StyleProperties {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.style
}

// Visible reports whether the inline style leaves the widget displayed.
func (w *Widget) Visible() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.style.Display == nil || *w.style.Display != "none"
}

// ============================================================================
// Traversal
// ============================================================================

// Walk traverses the subtree depth-first, calling fn for each widget.
// Returning false from fn stops the walk.
func (w *Widget) Walk(fn func(*Widget) bool) {
	walkWidget(w, fn)
}

func walkWidget(w *Widget, fn func(*Widget) bool) bool {
	if !fn(w) {
		return false
	}
	for _, child := range w.ChildWidgets() {
		if !walkWidget(child, fn) {
			return false
		}
	}
	return true
}

// Find returns the first widget in the subtree matching pred.
func (w *Widget) Find(pred func(*Widget) bool) *Widget {
	var found *Widget
	w.Walk(func(c *Widget) bool {
		if pred(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAllByClass returns every widget in the subtree carrying the class, in
// document order.
func (w *Widget) FindAllByClass(name string) []*Widget {
	var found []*Widget
	w.Walk(func(c *Widget) bool {
		if c.HasClass(name) {
			found = append(found, c)
		}
		return true
	})
	return found
}
