package preview

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/carousel"
	"github.com/agiangrant/carousel/retained"
)

func newTestModel(t *testing.T, n int, opts carousel.Options) (Model, *carousel.Carousel, clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClock()
	doc := retained.NewDocument(clock)
	texts := make([]string, n)
	for i := range texts {
		texts[i] = fmt.Sprintf("Slide %d", i+1)
	}
	doc.Body().AddChild(retained.SlideDeck(carousel.DefaultElementID, texts...))

	c, err := carousel.New(doc, opts)
	require.NoError(t, err)
	return NewModel(doc, c), c, clock
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestKeyRouting(t *testing.T) {
	tests := []struct {
		name string
		opts carousel.Options
		keys []tea.KeyMsg
		want int
	}{
		{
			name: "right clicks next",
			opts: carousel.Options{Controls: true},
			keys: []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyRight}},
			want: 2,
		},
		{
			name: "left at first slide stays",
			opts: carousel.Options{Controls: true},
			keys: []tea.KeyMsg{{Type: tea.KeyLeft}},
			want: 0,
		},
		{
			name: "arrows without controls",
			opts: carousel.Options{Infinite: true},
			keys: []tea.KeyMsg{{Type: tea.KeyLeft}},
			want: 3,
		},
		{
			name: "digit clicks pager dot",
			opts: carousel.Options{Pager: true},
			keys: []tea.KeyMsg{runes("3")},
			want: 2,
		},
		{
			name: "digit past the last dot is ignored",
			opts: carousel.Options{Pager: true},
			keys: []tea.KeyMsg{runes("9")},
			want: 0,
		},
		{
			name: "swipe left then right",
			opts: carousel.Options{},
			keys: []tea.KeyMsg{runes("s"), runes("s"), runes("S")},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, c, _ := newTestModel(t, 4, tt.opts)
			for _, key := range tt.keys {
				m, _ = send(m, key)
			}
			assert.Equal(t, tt.want, c.Index())
		})
	}
}

func TestHoverPausesAutoplay(t *testing.T) {
	m, c, clock := newTestModel(t, 4, carousel.Options{Autoplay: true, AutoplaySpeed: 1000})

	m, _ = send(m, runes("h"))
	assert.False(t, c.Autoplaying())
	assert.Contains(t, m.View(), "autoplay paused")

	clock.Advance(2 * time.Second)
	m, cmd := send(m, tickMsg(clock.Now()))
	assert.NotNil(t, cmd, "ticks reschedule")
	assert.Equal(t, 0, c.Index())

	m, _ = send(m, runes("h"))
	assert.True(t, c.Autoplaying())

	clock.Advance(time.Second)
	m, _ = send(m, tickMsg(clock.Now()))
	assert.Equal(t, 1, c.Index())
	assert.Contains(t, m.View(), "autoplay on")
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t, 2, carousel.Options{})

	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := send(m, key)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestRender(t *testing.T) {
	_, c, _ := newTestModel(t, 3, carousel.Options{
		Pager:     true,
		Controls:  true,
		Animation: carousel.AnimationSlide,
	})
	c.MoveTo(1)

	out := Render(c)
	assert.Contains(t, out, "Slide 1")
	assert.Contains(t, out, "Slide 3")
	assert.Contains(t, out, "slide 2/3")
	assert.Contains(t, out, "slide-translate")
	assert.Contains(t, out, "translateX(-33.333333333333336%)")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "❮")
	assert.Contains(t, out, "❯")
}

func TestRenderHidesBoundaryControl(t *testing.T) {
	_, c, _ := newTestModel(t, 3, carousel.Options{Controls: true})

	out := Render(c)
	assert.NotContains(t, out, "❮")
	assert.Contains(t, out, "❯")
}
