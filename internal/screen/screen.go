// Package screen defines what the router and the app frame need from a
// full-window view.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathwise/internal/ui/layout"
)

// Screen is one full-window view. The app draws the header and footer, so
// View only fills the content area it is given.
type Screen interface {
	// Init runs once, when the screen becomes active.
	Init() tea.Cmd

	// Update may return a different screen to take this one's place.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen put the persona and skill count in the
// header.
type StatusProvider interface {
	Status() *layout.Status
}
