package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/chat"
	"github.com/abhisek/pathwise/internal/logging"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/screens/welcome"
	"github.com/abhisek/pathwise/internal/screens/workspace"
	"github.com/abhisek/pathwise/internal/ui/layout"
)

// Options holds the dependencies wired in by the run command.
type Options struct {
	Catalog   *catalog.Catalog
	Runner    *analysis.Runner
	Responder chat.Responder
	Log       *logging.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *logging.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}
	deps := workspace.Deps{
		Catalog:   opts.Catalog,
		Runner:    opts.Runner,
		Responder: opts.Responder,
		Log:       log,
	}
	landing := welcome.New(opts.Catalog.Landing, func() screen.Screen {
		return workspace.New(deps)
	})
	return AppModel{
		router: router.New(landing),
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(msg)

	case router.ReplaceScreenMsg, router.PushScreenMsg:
		cmd := m.router.Update(msg)
		m.log.Debug("screen changed", "title", m.router.Active().Title())
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var status *layout.Status
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
