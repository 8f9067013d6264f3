package analysis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/skills"
	"github.com/abhisek/pathwise/internal/store"
)

type fakeEvents struct {
	mu       sync.Mutex
	analysis []store.AnalysisEventData
	err      error
}

func (f *fakeEvents) AppendAnalysisEvent(_ context.Context, data store.AnalysisEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analysis = append(f.analysis, data)
	return f.err
}

func (f *fakeEvents) AppendChatEvent(context.Context, store.ChatEventData) error { return nil }

func (f *fakeEvents) RecentEvents(context.Context, store.QueryOpts) ([]store.EventRecord, error) {
	return nil, nil
}

func (f *fakeEvents) ChatUsageByRule(context.Context) (map[string]int, error) { return nil, nil }

func (f *fakeEvents) AnalysisTotals(context.Context) (store.AnalysisTotals, error) {
	return store.AnalysisTotals{}, nil
}

func TestPrepareSeedsDefaultsIntoEmptyStore(t *testing.T) {
	r := NewRunner(newTestGenerator(1), 0, nil, nil)
	s := skills.NewStore()

	snap := r.Prepare(s)
	want := []string{"Python", "Data Analysis", "Excel", "Communication"}
	assert.Equal(t, want, snap.Skills)
	assert.True(t, snap.Seeded)
	assert.Equal(t, want, s.Skills())
}

func TestPrepareKeepsUserSkills(t *testing.T) {
	r := NewRunner(newTestGenerator(1), 0, nil, nil)
	s := skills.NewStore()
	s.Add("Go")
	s.SetPersona(skills.PersonaProfessional)

	snap := r.Prepare(s)
	assert.Equal(t, []string{"Go"}, snap.Skills)
	assert.False(t, snap.Seeded)
	assert.Equal(t, skills.PersonaProfessional, snap.Persona)
}

func TestPipelineFromEmptyStore(t *testing.T) {
	events := &fakeEvents{}
	r := NewRunner(newTestGenerator(1), time.Millisecond, events, nil)
	s := skills.NewStore()

	res, err := r.Run(context.Background(), r.Prepare(s))
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "Data Analysis", "Excel", "Communication"}, res.Skills)
	assert.Equal(t, []string{"Python", "Data Analysis", "Excel"}, res.Gaps[0].Items)
	require.Len(t, res.Careers, 4)
	assert.False(t, res.Penalized)

	require.Len(t, events.analysis, 1)
	ev := events.analysis[0]
	assert.NotEmpty(t, ev.RunID)
	assert.Equal(t, "student", ev.Persona)
	assert.Equal(t, 4, ev.SkillCount)
	assert.True(t, ev.Seeded)
	assert.Equal(t, "Data Scientist", ev.TopCareer)
	assert.False(t, ev.Canceled)
}

func TestRunCanceled(t *testing.T) {
	events := &fakeEvents{}
	r := NewRunner(newTestGenerator(1), time.Hour, events, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := r.Run(ctx, Snapshot{Skills: []string{"Python"}, Persona: skills.PersonaStudent})
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	require.Len(t, events.analysis, 1)
	assert.True(t, events.analysis[0].Canceled)
	assert.Empty(t, events.analysis[0].TopCareer)
}

func TestRunAlreadyCanceledWithoutDelay(t *testing.T) {
	r := NewRunner(newTestGenerator(1), 0, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, Snapshot{Skills: []string{"Python"}})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunSurvivesEventLogFailure(t *testing.T) {
	events := &fakeEvents{err: errors.New("disk full")}
	r := NewRunner(newTestGenerator(1), 0, events, nil)

	res, err := r.Run(context.Background(), Snapshot{Skills: []string{"Painting"}})
	require.NoError(t, err)
	assert.True(t, res.Penalized)
	assert.Len(t, events.analysis, 1)
}
