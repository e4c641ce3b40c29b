//go:build js && wasm

// Package jsdom implements the dom host contract over the browser DOM using
// syscall/js.
package jsdom

import (
	"fmt"
	"strings"
	"syscall/js"
	"time"

	"github.com/agiangrant/carousel/dom"
	"github.com/agiangrant/carousel/tw"
)

// ============================================================================
// Document
// ============================================================================

// Document wraps the page's document object.
type Document struct {
	window   js.Value
	document js.Value
}

var _ dom.Document = (*Document)(nil)

// New returns the document of the global window.
func New() (*Document, error) {
	global := js.Global()
	document := global.Get("document")
	if document.IsUndefined() || document.IsNull() {
		return nil, fmt.Errorf("jsdom: no document in global scope")
	}
	return &Document{window: global, document: document}, nil
}

// GetElementByID returns the element with the given id, or nil.
func (d *Document) GetElementByID(id string) dom.Element {
	return wrap(d.document.Call("getElementById", id))
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) dom.Element {
	return wrap(d.document.Call("createElement", tag))
}

// SetInterval schedules fn on the window's interval timer.
func (d *Document) SetInterval(interval time.Duration, fn func()) dom.Timer {
	cb := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn()
		return nil
	})
	id := d.window.Call("setInterval", cb, interval.Milliseconds())
	return &timer{window: d.window, id: id, cb: cb}
}

// InjectStylesheet appends a <style> element holding css to the head.
func (d *Document) InjectStylesheet(css string) {
	style := d.document.Call("createElement", "style")
	style.Set("textContent", css)
	d.document.Get("head").Call("appendChild", style)
}

type timer struct {
	window  js.Value
	id      js.Value
	cb      js.Func
	stopped bool
}

func (t *timer) Stop() {
	if t.stopped {
		return
	}
	t.stopped = true
	t.window.Call("clearInterval", t.id)
	t.cb.Release()
}

// ============================================================================
// Element
// ============================================================================

// Element wraps a DOM element. Listener callbacks stay registered for the
// lifetime of the page.
type Element struct {
	v js.Value
}

var _ dom.Element = (*Element)(nil)

func wrap(v js.Value) dom.Element {
	if v.IsUndefined() || v.IsNull() {
		return nil
	}
	return &Element{v: v}
}

func unwrap(e dom.Element) js.Value {
	el, ok := e.(*Element)
	if !ok {
		panic(fmt.Sprintf("jsdom: foreign element %T", e))
	}
	return el.v
}

// Value returns the underlying JavaScript object.
func (e *Element) Value() js.Value {
	return e.v
}

func (e *Element) Tag() string {
	return strings.ToLower(e.v.Get("tagName").String())
}

func (e *Element) Parent() dom.Element {
	return wrap(e.v.Get("parentElement"))
}

func (e *Element) Children() []dom.Element {
	children := e.v.Get("children")
	n := children.Length()
	result := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, &Element{v: children.Index(i)})
	}
	return result
}

func (e *Element) AppendChild(child dom.Element) {
	e.v.Call("appendChild", unwrap(child))
}

func (e *Element) InsertBefore(child, ref dom.Element) {
	r := js.Null()
	if ref != nil {
		r = unwrap(ref)
	}
	e.v.Call("insertBefore", unwrap(child), r)
}

func (e *Element) AddClass(name string) {
	e.v.Get("classList").Call("add", name)
}

func (e *Element) RemoveClass(name string) {
	e.v.Get("classList").Call("remove", name)
}

func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

// ApplyStyle writes every set property to the inline style.
func (e *Element) ApplyStyle(style tw.StyleProperties) {
	css := e.v.Get("style")
	for _, decl := range style.CSS() {
		css.Call("setProperty", decl.Property, decl.Value)
	}
}

func (e *Element) AddEventListener(t dom.EventType, h dom.Handler) {
	if h == nil {
		return
	}
	e.v.Call("addEventListener", t.String(), js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		h(toEvent(t, args[0]))
		return nil
	}))
}

// toEvent reads client coordinates from a mouse event, or from the first
// changed touch of a touch event.
func toEvent(t dom.EventType, e js.Value) dom.Event {
	event := dom.Event{Type: t}
	src := e
	if touches := e.Get("changedTouches"); !touches.IsUndefined() && touches.Length() > 0 {
		src = touches.Index(0)
	}
	if x := src.Get("clientX"); x.Type() == js.TypeNumber {
		event.X = x.Float()
		event.Y = src.Get("clientY").Float()
	}
	return event
}
