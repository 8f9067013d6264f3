package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/logging"
	"github.com/abhisek/pathwise/internal/skills"
	"github.com/abhisek/pathwise/internal/store"
)

// Snapshot is the input of one run, copied out of the skill store so the
// run can proceed off the UI goroutine.
type Snapshot struct {
	Skills  []string
	Persona skills.Persona
	Seeded  bool
}

// Runner wraps a Generator with the simulated analysis delay and the event
// log.
type Runner struct {
	gen      *Generator
	defaults []string
	delay    time.Duration
	events   store.EventRepo
	log      *logging.Logger
}

// NewRunner creates a Runner. events may be nil, in which case runs are
// not recorded.
func NewRunner(gen *Generator, delay time.Duration, events store.EventRepo, log *logging.Logger) *Runner {
	if log == nil {
		log = logging.Nop()
	}
	return &Runner{
		gen:      gen,
		defaults: gen.cat.DefaultSkills,
		delay:    delay,
		events:   events,
		log:      log,
	}
}

// Generator returns the underlying generator.
func (r *Runner) Generator() *Generator { return r.gen }

// Prepare seeds the default skills into an empty store and returns a
// snapshot of the store for Run.
func (r *Runner) Prepare(s *skills.Store) Snapshot {
	seeded := s.SeedDefaults(r.defaults)
	return Snapshot{
		Skills:  s.Skills(),
		Persona: s.Persona(),
		Seeded:  seeded,
	}
}

// Run waits out the analysis delay and then generates results. If ctx is
// done first, Run returns ctx.Err() and no result.
func (r *Runner) Run(ctx context.Context, snap Snapshot) (Result, error) {
	runID := uuid.NewString()
	start := time.Now()
	log := r.log.With("run_id", runID)
	log.Debug("analysis started", "skills", len(snap.Skills), "persona", string(snap.Persona))

	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			log.Info("analysis canceled", "after", time.Since(start))
			r.record(ctx, store.AnalysisEventData{
				RunID:      runID,
				Persona:    string(snap.Persona),
				SkillCount: len(snap.Skills),
				Seeded:     snap.Seeded,
				DurationMs: time.Since(start).Milliseconds(),
				Canceled:   true,
			})
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := r.gen.Generate(snap.Skills)
	log.Info("analysis finished",
		"top_career", res.TopCareer(),
		"penalized", res.Penalized,
		"bars", len(res.Bars),
	)
	r.record(ctx, store.AnalysisEventData{
		RunID:      runID,
		Persona:    string(snap.Persona),
		SkillCount: len(snap.Skills),
		Seeded:     snap.Seeded,
		TopCareer:  res.TopCareer(),
		Penalized:  res.Penalized,
		DurationMs: time.Since(start).Milliseconds(),
	})
	return res, nil
}

func (r *Runner) record(ctx context.Context, data store.AnalysisEventData) {
	if r.events == nil {
		return
	}
	// A canceled run is still logged, so detach from the caller's cancellation.
	if err := r.events.AppendAnalysisEvent(context.WithoutCancel(ctx), data); err != nil {
		r.log.Warn("failed to log analysis event", "error", err)
	}
}
