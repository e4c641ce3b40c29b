// Package preview renders a carousel mounted on a retained document in the
// terminal and drives it from the keyboard.
package preview

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/carousel"
	"github.com/agiangrant/carousel/retained"
	"github.com/agiangrant/carousel/tw"
)

// TickInterval is how often the document's timers are polled.
const TickInterval = 50 * time.Millisecond

// swipe distance simulated by the s/S keys, past the swipe threshold
const swipeDistance = 2 * carousel.SwipeThreshold

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	slideStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C757D")).
			Padding(1, 2)

	currentStyle = slideStyle.
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Bold(true)

	hiddenStyle = slideStyle.
			Foreground(lipgloss.Color("#3A3F44")).
			BorderForeground(lipgloss.Color("#3A3F44"))

	controlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	activeDotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea model for the preview.
type Model struct {
	doc *retained.Document
	c   *carousel.Carousel

	hovered bool
	width   int
}

// NewModel wraps a carousel mounted on doc.
func NewModel(doc *retained.Document, c *carousel.Carousel) Model {
	return Model{doc: doc, c: c}
}

// Run shows the preview until the user quits.
func Run(doc *retained.Document, c *carousel.Carousel, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewModel(doc, c), opts...).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tickMsg:
		m.doc.Tick()
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	viewport := m.viewport()

	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left":
		if !clickFirst(viewport, "prev") {
			m.c.MoveToPrev()
		}
	case "right":
		if !clickFirst(viewport, "next") {
			m.c.MoveToNext()
		}
	case "h":
		m.hovered = !m.hovered
		if m.hovered {
			viewport.MouseEnter()
		} else {
			viewport.MouseLeave()
		}
	case "s":
		viewport.Swipe(swipeDistance, 0)
	case "S":
		viewport.Swipe(0, swipeDistance)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.pressDot(int(key[0] - '1'))
		}
	}
	return m, nil
}

// pressDot clicks the i-th pager dot, or moves directly without a pager.
func (m Model) pressDot(i int) {
	dots := m.viewport().FindAllByClass("dot")
	if len(dots) == 0 {
		m.c.MoveTo(i)
		return
	}
	if i < len(dots) {
		dots[i].Click()
	}
}

func (m Model) viewport() *retained.Widget {
	return m.c.Viewport().(*retained.Widget)
}

// clickFirst clicks the first displayed widget with the class.
func clickFirst(root *retained.Widget, class string) bool {
	for _, w := range root.FindAllByClass(class) {
		if w.Visible() {
			w.Click()
			return true
		}
	}
	return false
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("carousel preview"))
	b.WriteString("\n")
	b.WriteString(Render(m.c))
	b.WriteString("\n\n")

	autoplay := "off"
	switch {
	case m.c.Autoplaying():
		autoplay = "on"
	case m.hovered && m.c.Options().Autoplay:
		autoplay = "paused"
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("autoplay %s · hover %v", autoplay, m.hovered)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("←/→ prev/next · 1-9 dots · h hover · s/S swipe · q quit"))

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
	}
	return b.String()
}

// Render draws the carousel's retained tree: the slides, the prev/next
// buttons that are displayed and the pager dots.
func Render(c *carousel.Carousel) string {
	viewport := c.Viewport().(*retained.Widget)
	track := c.Track().(*retained.Widget)

	slides := make([]string, 0, c.Len())
	for i, el := range c.Slides() {
		slide := el.(*retained.Widget)
		style := slideStyle
		switch {
		case !slide.Visible():
			style = hiddenStyle
		case i == c.Index():
			style = currentStyle
		}
		slides = append(slides, style.Render(slide.Text()))
	}

	row := []string{renderControl(viewport, "prev")}
	row = append(row, slides...)
	row = append(row, renderControl(viewport, "next"))

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Center, row...)}
	if dots := renderDots(viewport); dots != "" {
		lines = append(lines, dots)
	}

	status := fmt.Sprintf("slide %d/%d · %s", c.Index()+1, c.Len(), c.Options().Animation)
	if offset := track.Style().TranslateXPercent; offset != nil {
		status += fmt.Sprintf(" · translateX(%s%%)", tw.FormatNumber(*offset))
	}
	lines = append(lines, dimStyle.Render(status))

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func renderControl(viewport *retained.Widget, class string) string {
	buttons := viewport.FindAllByClass(class)
	if len(buttons) == 0 || !buttons[0].Visible() {
		return controlStyle.Render(" ")
	}
	return controlStyle.Render(buttons[0].Text())
}

func renderDots(viewport *retained.Widget) string {
	dots := viewport.FindAllByClass("dot")
	if len(dots) == 0 {
		return ""
	}
	marks := make([]string, len(dots))
	for i, dot := range dots {
		if dot.HasClass("active") {
			marks[i] = activeDotStyle.Render("●")
		} else {
			marks[i] = dimStyle.Render("○")
		}
	}
	return strings.Join(marks, " ")
}
