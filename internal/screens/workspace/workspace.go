// Package workspace is the main tabbed screen: the assessment form, the
// analysis results, the learning roadmap and the counselor chat.
package workspace

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/chat"
	"github.com/abhisek/pathwise/internal/logging"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/skills"
	"github.com/abhisek/pathwise/internal/tabs"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

const (
	analyzeLabel = "⚡ Analyze My Profile & Generate Roadmap"
	runningLabel = "⚙ Analyzing your profile..."

	barDuration  = 600 * time.Millisecond
	barTick      = 30 * time.Millisecond
	tabBarHeight = 2
)

// Deps holds everything the workspace needs from the outside.
type Deps struct {
	Catalog   *catalog.Catalog
	Runner    *analysis.Runner
	Responder chat.Responder
	Log       *logging.Logger
}

// WorkspaceScreen owns the skill store and every tab's state. All fields
// are touched only from Update.
type WorkspaceScreen struct {
	deps  Deps
	log   *logging.Logger
	store *skills.Store
	tabs  *tabs.Controller

	width, height int
	scroll        map[string]int

	// Assess tab.
	focus     assessFocus
	persona   components.Choice
	skillIn   components.TextInput
	tagCursor int
	analyze   components.Button

	// Analysis run.
	running  bool
	runSeq   int
	cancel   context.CancelFunc
	spinner  spinner.Model
	spinning bool

	// Results tab.
	result       *analysis.Result
	barElapsed   time.Duration
	barsAnimated bool
	careerCursor int
	selected     int

	// Roadmap tab.
	phases         []roadmap.PhaseView
	heading        string
	roadmapSeq     int
	roadmapElapsed time.Duration

	// Chat tab.
	widget     *chat.Widget
	chatIn     components.TextInput
	transcript viewport.Model
	questions  []string
}

var _ screen.Screen = (*WorkspaceScreen)(nil)
var _ screen.KeyHintProvider = (*WorkspaceScreen)(nil)
var _ screen.StatusProvider = (*WorkspaceScreen)(nil)

// New creates the workspace with an empty skill list and the assess tab
// active.
func New(deps Deps) *WorkspaceScreen {
	log := deps.Log
	if log == nil {
		log = logging.Nop()
	}

	labels := make([]string, len(deps.Catalog.Personas))
	for i, p := range deps.Catalog.Personas {
		labels[i] = p.Label
	}
	persona := components.NewChoice(labels, true)
	persona.Focused = true

	w := &WorkspaceScreen{
		deps:   deps,
		log:    log,
		store:  skills.NewStore(),
		tabs:   tabs.New(tabs.Assess, tabs.Results, tabs.Roadmap, tabs.Chat),
		scroll: make(map[string]int),

		focus:   focusPersona,
		persona: persona,
		skillIn: components.NewTextInput("Your skills", "Type a skill and press enter or ,", 60),

		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),

		phases:  roadmap.Build(deps.Catalog.Roadmap),
		heading: roadmap.DefaultHeading,

		widget:     chat.NewWidget(deps.Catalog.Chat.Greeting),
		chatIn:     components.NewTextInput("", "Ask the counselor anything...", 280),
		transcript: viewport.New(viewport.WithWidth(60), viewport.WithHeight(10)),
		questions:  deps.Catalog.Questions(),
	}
	w.analyze = components.NewButton(analyzeLabel, w.startAnalysis)
	w.refreshTranscript()
	return w
}

func (w *WorkspaceScreen) Title() string {
	return "Career Workspace"
}

func (w *WorkspaceScreen) Init() tea.Cmd {
	return w.restartRoadmap()
}

// Status reports the persona and skill count for the header.
func (w *WorkspaceScreen) Status() *layout.Status {
	label := string(w.store.Persona())
	if p, ok := w.deps.Catalog.PersonaByID(label); ok {
		label = p.Label
	}
	return &layout.Status{Persona: label, Skills: w.store.Len()}
}

func (w *WorkspaceScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Switch tab"}}
	switch w.tabs.Active() {
	case tabs.Assess:
		if w.running {
			hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Cancel"})
		} else {
			hints = append(hints,
				layout.KeyHint{Key: "↑↓", Description: "Move"},
				layout.KeyHint{Key: "Enter", Description: "Select"},
			)
		}
	case tabs.Results:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Career"},
			layout.KeyHint{Key: "Enter", Description: "Choose"},
			layout.KeyHint{Key: "PgUp/PgDn", Description: "Scroll"},
		)
	case tabs.Roadmap:
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Scroll"})
	case tabs.Chat:
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Send"},
			layout.KeyHint{Key: "1-5", Description: "Quick prompt"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (w *WorkspaceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.handleResize(msg.Width, layout.ContentHeight(msg.Height))
		return w, nil

	case components.ChoiceMadeMsg:
		if msg.Index >= 0 && msg.Index < len(w.deps.Catalog.Personas) {
			w.store.SetPersona(skills.Persona(w.deps.Catalog.Personas[msg.Index].ID))
		}
		return w, nil

	case analysisDoneMsg:
		return w, w.handleAnalysisDone(msg)

	case barTickMsg:
		return w, w.handleBarTick()

	case roadmapTickMsg:
		return w, w.handleRoadmapTick(msg)

	case chatReplyMsg:
		w.handleChatReply(msg)
		return w, nil

	case spinner.TickMsg:
		if !w.running && w.widget.Pending() == 0 {
			w.spinning = false
			return w, nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd

	case tea.KeyPressMsg:
		return w, w.handleKey(msg)
	}

	// Cursor blink and paste messages go to whichever field has focus.
	return w, w.updateInputs(msg)
}

func (w *WorkspaceScreen) handleResize(width, height int) {
	w.width = width
	w.height = height
	cw := components.ContentWidth(width)
	w.skillIn.SetWidth(cw - 8)
	w.chatIn.SetWidth(cw - 8)
	w.transcript.SetWidth(cw)
	w.transcript.SetHeight(w.transcriptHeight())
	w.refreshTranscript()
}

func (w *WorkspaceScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		return w.switchTab(w.tabs.Next())
	case "shift+tab":
		return w.switchTab(w.tabs.Prev())
	case "esc":
		w.cancelAnalysis()
		return nil
	}

	switch w.tabs.Active() {
	case tabs.Assess:
		return w.handleAssessKey(msg)
	case tabs.Results:
		return w.handleResultsKey(msg)
	case tabs.Roadmap:
		w.handleRoadmapKey(msg)
		return nil
	case tabs.Chat:
		return w.handleChatKey(msg)
	}
	return nil
}

// switchTab moves keyboard focus to the text field of the new tab.
func (w *WorkspaceScreen) switchTab(id string) tea.Cmd {
	w.skillIn.Blur()
	w.chatIn.Blur()
	switch id {
	case tabs.Assess:
		if w.focus == focusSkill {
			return w.skillIn.Focus()
		}
	case tabs.Chat:
		return w.chatIn.Focus()
	}
	return nil
}

func (w *WorkspaceScreen) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case w.skillIn.Focused():
		w.skillIn, cmd = w.skillIn.Update(msg)
	case w.chatIn.Focused():
		w.chatIn, cmd = w.chatIn.Update(msg)
	}
	return cmd
}

// startSpinner returns the first spinner tick unless one is already running.
func (w *WorkspaceScreen) startSpinner() tea.Cmd {
	if w.spinning {
		return nil
	}
	w.spinning = true
	return w.spinner.Tick
}
