package workspace

import (
	"time"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/chat"
)

// analysisDoneMsg carries the outcome of an analysis run. seq identifies
// the run so results of a canceled or superseded run can be dropped.
type analysisDoneMsg struct {
	seq    int
	result analysis.Result
	err    error
}

// barTickMsg advances the skill bar fill animation.
type barTickMsg time.Time

// roadmapTickMsg advances the staggered roadmap reveal started as seq.
type roadmapTickMsg struct {
	seq int
}

// chatReplyMsg delivers a counselor reply.
type chatReplyMsg struct {
	reply chat.Reply
	err   error
}
