package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/reveal"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

const tickInterval = 40 * time.Millisecond

// Block ids, in display order.
const (
	blockHero     = "hero"
	blockFeatures = "features"
	blockStats    = "stats"
)

var blockOrder = []string{blockHero, blockFeatures, blockStats}

type statTickMsg time.Time

// WelcomeScreen is the scrollable landing page. Blocks fade in the first
// time enough of them is on screen, and the stats counter animates once.
type WelcomeScreen struct {
	landing     catalog.Landing
	nextFactory func() screen.Screen

	width, height int
	offset        int

	observer *reveal.Observer
	revealed map[string]bool

	counter     *reveal.StatCounter
	steps       []reveal.Step
	statElapsed time.Duration
	ticking     bool

	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen produced
// by nextFactory when the user presses enter.
func New(landing catalog.Landing, nextFactory func() screen.Screen) *WelcomeScreen {
	obs := reveal.NewObserver(reveal.BlockThreshold)
	for _, id := range blockOrder {
		obs.Observe(id)
	}
	texts := make([]string, len(landing.Stats))
	for i, s := range landing.Stats {
		texts[i] = s.Value
	}
	return &WelcomeScreen{
		landing:     landing,
		nextFactory: nextFactory,
		observer:    obs,
		revealed:    make(map[string]bool),
		counter:     reveal.NewStatCounter(texts),
	}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Start assessment"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = layout.ContentHeight(msg.Height)
		w.offset = min(w.offset, w.maxOffset())
		return w, w.observe()

	case statTickMsg:
		return w, w.handleStatTick()

	case tea.KeyPressMsg:
		return w, w.handleKey(msg)
	}
	return w, nil
}

func (w *WelcomeScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if w.offset > 0 {
			w.offset--
		}
		return w.observe()
	case "down", "j":
		if w.offset < w.maxOffset() {
			w.offset++
		}
		return w.observe()
	case "pgdown", "space":
		w.offset = min(w.offset+max(w.height/2, 1), w.maxOffset())
		return w.observe()
	case "pgup":
		w.offset = max(w.offset-max(w.height/2, 1), 0)
		return w.observe()
	case "enter":
		return w.transition()
	}
	return nil
}

func (w *WelcomeScreen) handleStatTick() tea.Cmd {
	if !w.ticking {
		return nil
	}
	w.statElapsed += tickInterval
	if w.statElapsed >= reveal.Last(w.steps) {
		w.ticking = false
		return nil
	}
	return statTick()
}

func statTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return statTickMsg(t)
	})
}

// observe feeds the current visible ratio of every block to the observers.
func (w *WelcomeScreen) observe() tea.Cmd {
	if w.height <= 0 {
		return nil
	}
	top := 0
	var cmd tea.Cmd
	for _, id := range blockOrder {
		h := len(w.blockLines(id))
		ratio := reveal.VisibleRatio(top, h, w.offset, w.height)
		if w.observer.Intersect(id, ratio) {
			w.revealed[id] = true
		}
		if id == blockStats {
			if steps := w.counter.Intersect(ratio); steps != nil {
				w.steps = steps
				w.statElapsed = 0
				w.ticking = true
				cmd = statTick()
			}
		}
		top += h + 1
	}
	return cmd
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	w.observer.Disconnect()
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) maxOffset() int {
	return max(len(w.document())-w.height, 0)
}

// document returns every line of the page, revealed or not.
func (w *WelcomeScreen) document() []string {
	var lines []string
	for i, id := range blockOrder {
		if i > 0 {
			lines = append(lines, "")
		}
		block := w.blockLines(id)
		if !w.revealed[id] {
			block = make([]string, len(block))
		}
		lines = append(lines, block...)
	}
	return lines
}

func (w *WelcomeScreen) blockLines(id string) []string {
	var s string
	switch id {
	case blockHero:
		s = w.renderHero()
	case blockFeatures:
		s = w.renderFeatures()
	case blockStats:
		s = w.renderStats()
	}
	return strings.Split(s, "\n")
}

func (w *WelcomeScreen) cardWidth() int {
	return components.ContentWidth(max(w.width, layout.MinWidth))
}

func (w *WelcomeScreen) renderHero() string {
	cw := w.cardWidth()
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	lines := []string{
		"",
		center.Render(theme.Title.Render(w.landing.Headline)),
		"",
		center.Render(theme.Subtitle.Render(w.landing.Tagline)),
		"",
		center.Render(theme.ButtonActive.Render("Start your assessment  ⏎")),
		"",
	}
	return strings.Join(lines, "\n")
}

func (w *WelcomeScreen) renderFeatures() string {
	cw := w.cardWidth()
	half := cw / 2
	cards := make([]string, len(w.landing.Features))
	for i, f := range w.landing.Features {
		body := theme.Strong.Render(f.Title) + "\n" + theme.Subtitle.Render(f.Text)
		cards[i] = components.Card(body, half, false)
	}

	var rows []string
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], cards[i+1]))
		} else {
			rows = append(rows, cards[i])
		}
	}
	return components.SectionTitle("What you get") + "\n\n" + strings.Join(rows, "\n")
}

func (w *WelcomeScreen) renderStats() string {
	if len(w.landing.Stats) == 0 {
		return ""
	}
	cw := w.cardWidth()
	cell := lipgloss.NewStyle().Width(cw / len(w.landing.Stats)).Align(lipgloss.Center)

	nums := make([]string, len(w.landing.Stats))
	labels := make([]string, len(w.landing.Stats))
	for i, s := range w.landing.Stats {
		nums[i] = cell.Render(w.statText(i, s.Value))
		labels[i] = cell.Render(theme.Subtitle.Render(s.Label))
	}
	return components.Card(
		lipgloss.JoinHorizontal(lipgloss.Top, nums...)+"\n"+
			lipgloss.JoinHorizontal(lipgloss.Top, labels...),
		cw, false)
}

func (w *WelcomeScreen) statText(i int, value string) string {
	if i >= len(w.steps) {
		return theme.Subtitle.Render(value)
	}
	switch w.steps[i].StateAt(w.statElapsed) {
	case reveal.StatFading:
		return theme.Subtitle.Render("·")
	case reveal.StatFinal:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(w.steps[i].Text)
	default:
		return theme.Subtitle.Render(value)
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	lines := w.document()
	start := min(w.offset, len(lines))
	end := min(start+height, len(lines))
	content := strings.Join(lines[start:end], "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
