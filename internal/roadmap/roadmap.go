// Package roadmap builds the learning roadmap timeline from the catalogue.
package roadmap

import (
	"slices"
	"time"

	"github.com/abhisek/pathwise/internal/catalog"
)

// DefaultHeading is shown until a career is selected.
const DefaultHeading = "Your Learning Roadmap"

// Stagger is the reveal delay between consecutive phases.
const Stagger = 100 * time.Millisecond

// PhaseView is a roadmap phase ready for rendering.
type PhaseView struct {
	Index int
	Label string
	Title string
	Done  bool
	Items []catalog.Item
	Delay time.Duration
}

// Build converts catalogue phases into views with staggered reveal delays.
func Build(phases []catalog.Phase) []PhaseView {
	views := make([]PhaseView, len(phases))
	for i, p := range phases {
		views[i] = PhaseView{
			Index: i,
			Label: p.Label,
			Title: p.Title,
			Done:  p.Done,
			Items: slices.Clone(p.Items),
			Delay: time.Duration(i) * Stagger,
		}
	}
	return views
}

// Visible returns how many phases have been revealed after elapsed.
func Visible(views []PhaseView, elapsed time.Duration) int {
	n := 0
	for _, v := range views {
		if elapsed < v.Delay {
			break
		}
		n++
	}
	return n
}

// Heading returns the roadmap heading for the selected career.
func Heading(career string) string {
	if career == "" {
		return DefaultHeading
	}
	return "Roadmap → " + career
}
