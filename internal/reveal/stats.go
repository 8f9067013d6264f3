package reveal

import "time"

const (
	fadeStagger = 80 * time.Millisecond
	swapBase    = 200 * time.Millisecond
	swapStagger = 100 * time.Millisecond
)

const statsID = "stats"

// StatState is the display state of one stat number.
type StatState int

const (
	StatInitial StatState = iota
	StatFading
	StatFinal
)

// Step schedules the animation of one stat number, relative to the moment
// the stats block became visible.
type Step struct {
	Index  int
	Text   string
	FadeAt time.Duration
	SwapAt time.Duration
}

// StateAt returns the stat's state elapsed after the trigger.
func (s Step) StateAt(elapsed time.Duration) StatState {
	switch {
	case elapsed >= s.SwapAt:
		return StatFinal
	case elapsed >= s.FadeAt:
		return StatFading
	default:
		return StatInitial
	}
}

// StatCounter animates the landing stats once, the first time the stats
// block is at least half visible.
type StatCounter struct {
	texts []string
	obs   *Observer
}

// NewStatCounter returns a counter for the given final texts.
func NewStatCounter(texts []string) *StatCounter {
	obs := NewObserver(StatsThreshold)
	obs.Observe(statsID)
	return &StatCounter{texts: texts, obs: obs}
}

// Intersect reports the stats block's visible ratio. The first qualifying
// call returns the schedule and disconnects; every other call returns nil.
func (c *StatCounter) Intersect(ratio float64) []Step {
	if !c.obs.Intersect(statsID, ratio) {
		return nil
	}
	c.obs.Disconnect()
	return Schedule(c.texts)
}

// Fired reports whether the counter has already run.
func (c *StatCounter) Fired() bool { return !c.obs.Observing(statsID) }

// Schedule returns the animation steps for texts: stat i fades out at
// i×80ms and shows its final text 200ms + i×100ms after that.
func Schedule(texts []string) []Step {
	steps := make([]Step, len(texts))
	for i, t := range texts {
		fade := time.Duration(i) * fadeStagger
		steps[i] = Step{
			Index:  i,
			Text:   t,
			FadeAt: fade,
			SwapAt: fade + swapBase + time.Duration(i)*swapStagger,
		}
	}
	return steps
}

// Last returns the time of the final swap in steps.
func Last(steps []Step) time.Duration {
	var last time.Duration
	for _, s := range steps {
		last = max(last, s.SwapAt)
	}
	return last
}
