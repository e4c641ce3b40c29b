package carousel

import "github.com/agiangrant/carousel/dom"

const (
	pagerClass  = "buttons_container"
	dotClass    = "dot"
	activeClass = "active"
)

// pager is the row of indicator dots, one per slide.
type pager struct {
	container dom.Element
	dots      []dom.Element
}

func buildPager(doc dom.Document, viewport dom.Element, n int, moveTo func(int)) *pager {
	p := &pager{
		container: doc.CreateElement("div"),
		dots:      make([]dom.Element, n),
	}
	p.container.AddClass(pagerClass)
	viewport.AppendChild(p.container)

	for i := range n {
		dot := doc.CreateElement("button")
		dot.AddClass(dotClass)
		p.container.AppendChild(dot)
		dot.AddEventListener(dom.EventClick, func(dom.Event) { moveTo(i) })
		p.dots[i] = dot
	}
	return p
}

// activate moves the active marker to dots[index].
func (p *pager) activate(index int) {
	if p == nil {
		return
	}
	for i, dot := range p.dots {
		if i != index && dot.HasClass(activeClass) {
			dot.RemoveClass(activeClass)
		}
	}
	p.dots[index].AddClass(activeClass)
}
