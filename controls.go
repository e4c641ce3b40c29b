package carousel

import "github.com/agiangrant/carousel/dom"

const (
	prevClass = "prev"
	nextClass = "next"

	prevLabel = "❮"
	nextLabel = "❯"
)

// controls are the prev/next buttons.
type controls struct {
	prev dom.Element
	next dom.Element
}

func buildControls(doc dom.Document, viewport dom.Element, onPrev, onNext func()) *controls {
	c := &controls{
		prev: newControlButton(doc, prevClass, prevLabel, onPrev),
		next: newControlButton(doc, nextClass, nextLabel, onNext),
	}
	viewport.AppendChild(c.prev)
	viewport.AppendChild(c.next)
	return c
}

func newControlButton(doc dom.Document, class, label string, onClick func()) dom.Element {
	b := doc.CreateElement("button")
	b.AddClass(class)
	b.SetText(label)
	b.AddEventListener(dom.EventClick, func(dom.Event) { onClick() })
	return b
}

func (c *controls) show(prev, next bool, styles viewStyles) {
	if c == nil {
		return
	}
	c.prev.ApplyStyle(pick(prev, styles.shown, styles.hidden))
	c.next.ApplyStyle(pick(next, styles.shown, styles.hidden))
}

func pick[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
