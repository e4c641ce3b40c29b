package retained

import (
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetElementByID(t *testing.T) {
	doc := NewDocument(clockwork.NewFakeClock())
	deck := SlideDeck("slider", "a")
	doc.Body().AddChild(Div("", deck))

	found := doc.GetElementByID("slider")
	require.NotNil(t, found)
	assert.Same(t, deck, found)

	assert.Nil(t, doc.GetElementByID("missing"))
	assert.Nil(t, doc.GetElementByID(""))

	deck.RemoveFromParent()
	assert.Nil(t, doc.GetElementByID("slider"), "detached widgets are not found")
}

func TestCreateElementIsDetached(t *testing.T) {
	doc := NewDocument(nil)
	el := doc.CreateElement("button")

	assert.Equal(t, "button", el.Tag())
	assert.Nil(t, el.Parent())
	assert.NotNil(t, doc.Clock())
}
