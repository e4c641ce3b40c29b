package carousel

import (
	"fmt"

	"github.com/agiangrant/carousel/dom"
	"github.com/agiangrant/carousel/tw"
)

const viewportClass = "viewport"

// wrapTrack inserts a viewport where track was and moves track inside it.
// A detached track gets a detached viewport.
func wrapTrack(doc dom.Document, track dom.Element) dom.Element {
	viewport := doc.CreateElement("div")
	viewport.AddClass(viewportClass)
	viewport.ApplyStyle(tw.Parse("relative overflow-hidden"))

	if parent := track.Parent(); parent != nil {
		parent.InsertBefore(viewport, track)
	}
	viewport.AppendChild(track)
	return viewport
}

// trackClasses sizes the track to hold n viewport-wide slides side by side.
func trackClasses(n, speed int) string {
	return fmt.Sprintf("w-[%s%%] transition-all duration-[%dms]",
		tw.FormatNumber(float64(n)*100), speed)
}

// slideClasses sizes one slide to a viewport width and sets its durations.
func slideClasses(n, speed int) string {
	return fmt.Sprintf("float-left w-[%s%%] duration-[%dms]",
		tw.FormatNumber(100/float64(n)), speed)
}

func applyLayout(track dom.Element, slides []dom.Element, speed int) {
	track.ApplyStyle(tw.Parse(trackClasses(len(slides), speed)))

	slide := tw.Parse(slideClasses(len(slides), speed))
	for _, s := range slides {
		s.ApplyStyle(slide)
	}
}
