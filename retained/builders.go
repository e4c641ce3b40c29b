package retained

// Builder helpers for common element patterns.
// These provide a fluent API for constructing trees.

// Div creates a div with the given classes and children.
func Div(classes string, children ...*Widget) *Widget {
	w := NewWidget("div")
	if classes != "" {
		w.SetClasses(classes)
	}
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// Text creates a div holding text.
func Text(text string, classes string) *Widget {
	w := Div(classes)
	w.SetText(text)
	return w
}

// Button creates a button with a label.
func Button(text string, classes string) *Widget {
	w := NewWidget("button")
	w.SetText(text)
	if classes != "" {
		w.SetClasses(classes)
	}
	return w
}

// WithID sets the element id and returns w.
func (w *Widget) WithID(id string) *Widget {
	return w.SetElementID(id)
}

// SlideDeck builds a container with the given id holding one text slide per
// entry, ready to be mounted under a document body.
func SlideDeck(id string, texts ...string) *Widget {
	deck := Div("").WithID(id)
	for _, text := range texts {
		deck.AddChild(Text(text, "slide"))
	}
	return deck
}
