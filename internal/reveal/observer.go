// Package reveal implements one-shot visibility observers for the landing
// screen: blocks that fade in once scrolled into view and a stats counter
// that animates once.
package reveal

// Thresholds used by the landing screen.
const (
	BlockThreshold = 0.12
	StatsThreshold = 0.5
)

// Observer fires at most once per observed id, the first time the id's
// visible ratio reaches the threshold.
type Observer struct {
	threshold float64
	watching  map[string]bool
}

// NewObserver returns an observer with the given intersection threshold.
func NewObserver(threshold float64) *Observer {
	return &Observer{threshold: threshold, watching: make(map[string]bool)}
}

// Observe starts watching id.
func (o *Observer) Observe(id string) {
	o.watching[id] = true
}

// Intersect reports a new visible ratio for id. It returns true exactly once
// per observed id, when ratio first reaches the threshold, and stops
// watching that id.
func (o *Observer) Intersect(id string, ratio float64) bool {
	if !o.watching[id] || ratio <= 0 || ratio < o.threshold {
		return false
	}
	delete(o.watching, id)
	return true
}

// Observing reports whether id is still being watched.
func (o *Observer) Observing(id string) bool { return o.watching[id] }

// Disconnect stops watching every id.
func (o *Observer) Disconnect() {
	clear(o.watching)
}

// VisibleRatio returns the fraction of a block spanning [top, top+height)
// that lies inside the window [viewTop, viewTop+viewHeight).
func VisibleRatio(top, height, viewTop, viewHeight int) float64 {
	if height <= 0 || viewHeight <= 0 {
		return 0
	}
	lo := max(top, viewTop)
	hi := min(top+height, viewTop+viewHeight)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(height)
}
