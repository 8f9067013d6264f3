package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathwise/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

// countingScreen records every message it receives.
type countingScreen struct {
	stubScreen
	msgs int
}

func (s *countingScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.msgs++
	return s, nil
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	bottom := &countingScreen{stubScreen: stubScreen{title: "bottom"}}
	r := New(bottom)
	top := &countingScreen{stubScreen: stubScreen{title: "top"}}
	r.Push(top)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if top.msgs != 2 {
		t.Errorf("top received %d messages, want 2", top.msgs)
	}
	if bottom.msgs != 0 {
		t.Errorf("bottom received %d messages, want 0", bottom.msgs)
	}
}

func TestNavigationMessagesAreNotForwarded(t *testing.T) {
	s1 := &countingScreen{stubScreen: stubScreen{title: "first"}}
	r := New(s1)

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "second"}})
	r.Update(PopScreenMsg{})

	if s1.msgs != 0 {
		t.Errorf("navigation messages leaked to screen: %d", s1.msgs)
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

// sizeScreen remembers the last size it was given.
type sizeScreen struct {
	stubScreen
	width, height int
}

func (s *sizeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		s.width, s.height = size.Width, size.Height
	}
	return s, nil
}

func TestPushedScreenGetsLastSize(t *testing.T) {
	r := New(&sizeScreen{stubScreen: stubScreen{title: "first"}})
	r.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	s2 := &sizeScreen{stubScreen: stubScreen{title: "second"}}
	r.Update(PushScreenMsg{Screen: s2})

	if s2.width != 100 || s2.height != 40 {
		t.Errorf("pushed screen sized %dx%d, want 100x40", s2.width, s2.height)
	}
}

func TestReplacedScreenGetsLastSize(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Update(tea.WindowSizeMsg{Width: 90, Height: 30})

	s2 := &sizeScreen{stubScreen: stubScreen{title: "second"}}
	r.Replace(s2)

	if s2.width != 90 || s2.height != 30 {
		t.Errorf("replaced screen sized %dx%d, want 90x30", s2.width, s2.height)
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestPopResizesRevealedScreen(t *testing.T) {
	bottom := &sizeScreen{stubScreen: stubScreen{title: "bottom"}}
	r := New(bottom)
	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	r.Push(&stubScreen{title: "top"})

	// The terminal shrinks while bottom is covered.
	r.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if bottom.width != 80 {
		t.Fatalf("covered screen was resized to %d", bottom.width)
	}

	r.Pop()
	if bottom.width != 60 || bottom.height != 20 {
		t.Errorf("revealed screen sized %dx%d, want 60x20", bottom.width, bottom.height)
	}
}

func TestNoSizeReplayBeforeFirstResize(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	s2 := &countingScreen{stubScreen: stubScreen{title: "second"}}
	r.Push(s2)

	if s2.msgs != 0 {
		t.Errorf("screen received %d messages before any resize, want 0", s2.msgs)
	}
}
