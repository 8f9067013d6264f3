package store

import (
	"context"
	"time"
)

// Event kinds.
const (
	KindAnalysis = "analysis"
	KindChat     = "chat"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	Kind   string    // KindAnalysis, KindChat or "" for both
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AnalysisEventData captures one finished or canceled analysis run. Skill
// names are deliberately absent.
type AnalysisEventData struct {
	RunID      string
	Persona    string
	SkillCount int
	Seeded     bool
	TopCareer  string
	Penalized  bool
	DurationMs int64
	Canceled   bool
}

// ChatEventData captures one counselor reply. The message text is not kept.
type ChatEventData struct {
	SessionID   string
	Rule        string
	QuickPrompt bool
	LatencyMs   int64
}

// EventRecord is a stored event of either kind. Exactly one of Analysis and
// Chat is set, matching Kind.
type EventRecord struct {
	Kind      string
	Sequence  int64
	Timestamp time.Time
	Analysis  *AnalysisEventData
	Chat      *ChatEventData
}

// AnalysisTotals aggregates the analysis log.
type AnalysisTotals struct {
	Runs          int
	Canceled      int
	Seeded        int
	Penalized     int
	AvgDurationMs float64
	TopCareers    map[string]int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnalysisEvent records an analysis run.
	AppendAnalysisEvent(ctx context.Context, data AnalysisEventData) error

	// AppendChatEvent records a counselor reply.
	AppendChatEvent(ctx context.Context, data ChatEventData) error

	// RecentEvents returns events newest first.
	RecentEvents(ctx context.Context, opts QueryOpts) ([]EventRecord, error)

	// ChatUsageByRule counts replies per rule name.
	ChatUsageByRule(ctx context.Context) (map[string]int, error)

	// AnalysisTotals aggregates all analysis runs.
	AnalysisTotals(ctx context.Context) (AnalysisTotals, error)
}
