// Package router keeps the TUI's navigation stack. The landing page sits at
// the bottom until the user continues, and whatever is on top receives the
// input.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathwise/internal/screen"
)

// Navigation requests. Screens emit them from commands and the app hands
// them to Update.
type (
	// PushScreenMsg opens a screen above the current one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg returns to the screen below. The root is never popped.
	PopScreenMsg struct{}

	// ReplaceScreenMsg swaps the current screen, leaving no way back to it.
	ReplaceScreenMsg struct{ Screen screen.Screen }
)

// Router owns the screen stack and remembers the terminal size so that a
// screen becoming active is laid out before its first frame.
type Router struct {
	stack []screen.Screen
	size  *tea.WindowSizeMsg
}

// New starts a stack with root at the bottom.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s on top of the stack.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return r.enter(s)
}

// Pop drops the top screen unless it is the root. The screen underneath
// gets the current size, which may have changed while it was covered.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return r.resize()
}

// Replace puts s in place of the top screen; depth is unchanged.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		r.stack = append(r.stack, s)
	} else {
		r.stack[len(r.stack)-1] = s
	}
	return r.enter(s)
}

func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation requests and sends everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case tea.WindowSizeMsg:
		r.size = &msg
	}
	return r.forward(msg)
}

// View draws the active screen into the content area.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}

// enter starts a screen that just became active.
func (r *Router) enter(s screen.Screen) tea.Cmd {
	initCmd := s.Init()
	return tea.Batch(initCmd, r.resize())
}

// resize replays the last terminal size to the active screen.
func (r *Router) resize() tea.Cmd {
	if r.size == nil {
		return nil
	}
	return r.forward(*r.size)
}

func (r *Router) forward(msg tea.Msg) tea.Cmd {
	top := len(r.stack) - 1
	if top < 0 {
		return nil
	}
	updated, cmd := r.stack[top].Update(msg)
	r.stack[top] = updated
	return cmd
}
