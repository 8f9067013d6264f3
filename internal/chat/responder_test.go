package chat

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/store"
)

func newCanned() *CannedResponder {
	return NewCannedResponder(catalog.Default().Chat)
}

func ruleReply(t *testing.T, name string) string {
	t.Helper()
	for _, r := range catalog.Default().Chat.Rules {
		if r.Name == name {
			return r.Reply
		}
	}
	t.Fatalf("no rule %q", name)
	return ""
}

func TestResolveCannedVerbatim(t *testing.T) {
	r := newCanned()
	for _, qa := range catalog.Default().Chat.Canned {
		got, rule := r.Resolve(qa.Question)
		assert.Equal(t, qa.Answer, got)
		assert.Equal(t, RuleCanned, rule)
	}

	got, _ := r.Resolve("How do I build a portfolio?")
	assert.True(t, strings.HasPrefix(got, "A strong portfolio needs **3 projects**"))
}

func TestResolveCannedIsExact(t *testing.T) {
	r := newCanned()
	_, rule := r.Resolve("how do i build a portfolio?")
	assert.NotEqual(t, RuleCanned, rule)
	_, rule = r.Resolve("How do I build a portfolio? ")
	assert.NotEqual(t, RuleCanned, rule)
}

func TestResolveKeywordRules(t *testing.T) {
	r := newCanned()

	tests := []struct {
		input string
		rule  string
	}{
		{"Should I learn PYTHON first?", "python"},
		{"I love to code", "python"},
		{"Is Programming hard?", "python"},
		{"Which certification is best?", "certification"},
		{"any good COURSE?", "certification"},
		{"Help with my Interview", "interview"},
		{"How do I get a JOB", "interview"},
		{"python interview tips", "python"}, // rules are ordered
		{"What about the weather?", RuleFallback},
		{"", RuleFallback},
	}
	for _, tt := range tests {
		got, rule := r.Resolve(tt.input)
		assert.Equal(t, tt.rule, rule, "input %q", tt.input)
		if tt.rule == RuleFallback {
			assert.Equal(t, catalog.Default().Chat.Fallback, got)
		} else {
			assert.Equal(t, ruleReply(t, tt.rule), got)
		}
	}
}

func TestResolveInterviewSubstring(t *testing.T) {
	r := newCanned()
	want := ruleReply(t, "interview")
	for _, in := range []string{"interview", "INTERVIEWS soon", "my mock-Interview went badly"} {
		got, _ := r.Resolve(in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestWithLatencyDelaysWithinWindow(t *testing.T) {
	r := WithLatency(newCanned(), 5*time.Millisecond, 15*time.Millisecond, rand.NewPCG(1, 2))

	start := time.Now()
	reply, err := r.Respond(context.Background(), Request{Text: "python?"})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, "python", reply.Rule)
	assert.GreaterOrEqual(t, reply.Latency, 5*time.Millisecond)
	assert.Less(t, reply.Latency, 15*time.Millisecond)
	assert.GreaterOrEqual(t, elapsed, reply.Latency)
}

func TestWithLatencyCanceled(t *testing.T) {
	r := WithLatency(newCanned(), time.Hour, 2*time.Hour, rand.NewPCG(1, 2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Respond(ctx, Request{Text: "hello"})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWithLatencyZeroWindow(t *testing.T) {
	r := WithLatency(newCanned(), 0, 0, rand.NewPCG(1, 2))
	reply, err := r.Respond(context.Background(), Request{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), reply.Latency)
	assert.Equal(t, RuleFallback, reply.Rule)
}

type recordingRepo struct {
	mu   sync.Mutex
	chat []store.ChatEventData
	err  error
}

func (r *recordingRepo) AppendAnalysisEvent(context.Context, store.AnalysisEventData) error {
	return nil
}

func (r *recordingRepo) AppendChatEvent(_ context.Context, data store.ChatEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chat = append(r.chat, data)
	return r.err
}

func (r *recordingRepo) RecentEvents(context.Context, store.QueryOpts) ([]store.EventRecord, error) {
	return nil, nil
}

func (r *recordingRepo) ChatUsageByRule(context.Context) (map[string]int, error) { return nil, nil }

func (r *recordingRepo) AnalysisTotals(context.Context) (store.AnalysisTotals, error) {
	return store.AnalysisTotals{}, nil
}

func TestWithEventsRecordsRuleNotText(t *testing.T) {
	repo := &recordingRepo{}
	r := WithEvents(newCanned(), repo, "session-1", nil)

	q := catalog.Default().Chat.Canned[0].Question
	reply, err := r.Respond(context.Background(), Request{Text: q, QuickPrompt: true})
	require.NoError(t, err)
	assert.Equal(t, RuleCanned, reply.Rule)

	require.Len(t, repo.chat, 1)
	assert.Equal(t, store.ChatEventData{
		SessionID:   "session-1",
		Rule:        RuleCanned,
		QuickPrompt: true,
		LatencyMs:   repo.chat[0].LatencyMs,
	}, repo.chat[0])
}

func TestWithEventsFullStack(t *testing.T) {
	repo := &recordingRepo{}
	r := WithEvents(
		WithLatency(newCanned(), 2*time.Millisecond, 3*time.Millisecond, rand.NewPCG(3, 4)),
		repo, "s", nil,
	)

	_, err := r.Respond(context.Background(), Request{Text: "course?"})
	require.NoError(t, err)
	require.Len(t, repo.chat, 1)
	assert.Equal(t, "certification", repo.chat[0].Rule)
	assert.Equal(t, int64(2), repo.chat[0].LatencyMs)
}

func TestWithEventsSkipsCanceledReplies(t *testing.T) {
	repo := &recordingRepo{}
	r := WithEvents(WithLatency(newCanned(), time.Hour, time.Hour+1, rand.NewPCG(1, 1)), repo, "s", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Respond(ctx, Request{Text: "hi"})
	assert.Error(t, err)
	assert.Empty(t, repo.chat)
}

func TestWithEventsLogFailureDoesNotFailReply(t *testing.T) {
	repo := &recordingRepo{err: errors.New("locked")}
	r := WithEvents(newCanned(), repo, "s", nil)

	reply, err := r.Respond(context.Background(), Request{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, RuleFallback, reply.Rule)
}

func TestWithEventsNilRepo(t *testing.T) {
	r := WithEvents(newCanned(), nil, "s", nil)
	_, err := r.Respond(context.Background(), Request{Text: "hi"})
	assert.NoError(t, err)
}
