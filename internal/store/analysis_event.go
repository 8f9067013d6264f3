package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// Analysis event columns, in scan order.
const (
	analysisRunID      = "run_id"
	analysisPersona    = "persona"
	analysisSkillCount = "skill_count"
	analysisSeeded     = "seeded"
	analysisTopCareer  = "top_career"
	analysisPenalized  = "penalized"
	analysisDurationMs = "duration_ms"
	analysisCanceled   = "canceled"
)

var analysisColumns = []string{
	fieldSequence, fieldTimestamp,
	analysisRunID, analysisPersona, analysisSkillCount, analysisSeeded,
	analysisTopCareer, analysisPenalized, analysisDurationMs, analysisCanceled,
}

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) AppendAnalysisEvent(ctx context.Context, data AnalysisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	spec := sqlgraph.NewCreateSpec(analysisTable, sqlgraph.NewFieldSpec(fieldID, field.TypeInt))
	spec.SetField(fieldSequence, field.TypeInt64, seqNum)
	spec.SetField(fieldTimestamp, field.TypeTime, time.Now().UTC())
	spec.SetField(analysisRunID, field.TypeString, data.RunID)
	spec.SetField(analysisPersona, field.TypeString, data.Persona)
	spec.SetField(analysisSkillCount, field.TypeInt, data.SkillCount)
	spec.SetField(analysisSeeded, field.TypeBool, data.Seeded)
	spec.SetField(analysisTopCareer, field.TypeString, data.TopCareer)
	spec.SetField(analysisPenalized, field.TypeBool, data.Penalized)
	spec.SetField(analysisDurationMs, field.TypeInt64, data.DurationMs)
	spec.SetField(analysisCanceled, field.TypeBool, data.Canceled)

	if err := sqlgraph.CreateNode(ctx, r.drv, spec); err != nil {
		return fmt.Errorf("save analysis event: %w", err)
	}
	return nil
}

func (r *eventRepo) queryAnalysisEvents(ctx context.Context, opts QueryOpts) ([]EventRecord, error) {
	var records []EventRecord

	spec := opts.querySpec(analysisTable, analysisColumns)
	spec.ScanValues = func(columns []string) ([]any, error) {
		values := make([]any, len(columns))
		for i, c := range columns {
			switch c {
			case fieldSequence, analysisSkillCount, analysisDurationMs:
				values[i] = new(entsql.NullInt64)
			case fieldTimestamp:
				values[i] = new(entsql.NullTime)
			case analysisRunID, analysisPersona, analysisTopCareer:
				values[i] = new(entsql.NullString)
			case analysisSeeded, analysisPenalized, analysisCanceled:
				values[i] = new(entsql.NullBool)
			default:
				return nil, fmt.Errorf("unexpected column %q for analysis event", c)
			}
		}
		return values, nil
	}
	spec.Assign = func(columns []string, values []any) error {
		rec := EventRecord{Kind: KindAnalysis}
		d := &AnalysisEventData{}
		for i, c := range columns {
			switch c {
			case fieldSequence:
				rec.Sequence = values[i].(*entsql.NullInt64).Int64
			case fieldTimestamp:
				rec.Timestamp = values[i].(*entsql.NullTime).Time
			case analysisRunID:
				d.RunID = values[i].(*entsql.NullString).String
			case analysisPersona:
				d.Persona = values[i].(*entsql.NullString).String
			case analysisSkillCount:
				d.SkillCount = int(values[i].(*entsql.NullInt64).Int64)
			case analysisSeeded:
				d.Seeded = values[i].(*entsql.NullBool).Bool
			case analysisTopCareer:
				d.TopCareer = values[i].(*entsql.NullString).String
			case analysisPenalized:
				d.Penalized = values[i].(*entsql.NullBool).Bool
			case analysisDurationMs:
				d.DurationMs = values[i].(*entsql.NullInt64).Int64
			case analysisCanceled:
				d.Canceled = values[i].(*entsql.NullBool).Bool
			}
		}
		rec.Analysis = d
		records = append(records, rec)
		return nil
	}

	if err := sqlgraph.QueryNodes(ctx, r.drv, spec); err != nil {
		return nil, fmt.Errorf("query analysis events: %w", err)
	}
	return records, nil
}

// AnalysisTotals folds the whole analysis log. The log is local and small,
// so it is read in one pass rather than aggregated per column in SQL.
func (r *eventRepo) AnalysisTotals(ctx context.Context) (AnalysisTotals, error) {
	recs, err := r.queryAnalysisEvents(ctx, QueryOpts{})
	if err != nil {
		return AnalysisTotals{}, fmt.Errorf("analysis totals: %w", err)
	}

	totals := AnalysisTotals{TopCareers: make(map[string]int)}
	var (
		finished   int
		durationMs int64
	)
	for _, rec := range recs {
		d := rec.Analysis
		totals.Runs++
		if d.Seeded {
			totals.Seeded++
		}
		if d.Penalized {
			totals.Penalized++
		}
		if d.Canceled {
			totals.Canceled++
			continue
		}
		finished++
		durationMs += d.DurationMs
		if d.TopCareer != "" {
			totals.TopCareers[d.TopCareer]++
		}
	}
	if finished > 0 {
		totals.AvgDurationMs = float64(durationMs) / float64(finished)
	}
	return totals, nil
}
