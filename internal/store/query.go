package store

import (
	"context"
	"fmt"
	"sort"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// querySpec builds an ent node query over table with the sequence and
// timestamp bounds of o, newest first.
func (o QueryOpts) querySpec(table string, columns []string) *sqlgraph.QuerySpec {
	spec := sqlgraph.NewQuerySpec(table, columns, sqlgraph.NewFieldSpec(fieldID, field.TypeInt))
	spec.Predicate = func(s *entsql.Selector) {
		if o.After > 0 {
			s.Where(entsql.GT(s.C(fieldSequence), o.After))
		}
		if o.Before > 0 {
			s.Where(entsql.LT(s.C(fieldSequence), o.Before))
		}
		if !o.From.IsZero() {
			s.Where(entsql.GTE(s.C(fieldTimestamp), o.From.UTC()))
		}
		if !o.To.IsZero() {
			s.Where(entsql.LTE(s.C(fieldTimestamp), o.To.UTC()))
		}
	}
	spec.Order = func(s *entsql.Selector) {
		s.OrderBy(entsql.Desc(s.C(fieldSequence)))
	}
	if o.Limit > 0 {
		spec.Limit = o.Limit
	}
	return spec
}

func (r *eventRepo) RecentEvents(ctx context.Context, opts QueryOpts) ([]EventRecord, error) {
	var records []EventRecord

	switch opts.Kind {
	case KindAnalysis, KindChat, "":
	default:
		return nil, fmt.Errorf("unknown event kind: %q", opts.Kind)
	}

	if opts.Kind == "" || opts.Kind == KindAnalysis {
		recs, err := r.queryAnalysisEvents(ctx, opts)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	if opts.Kind == "" || opts.Kind == KindChat {
		recs, err := r.queryChatEvents(ctx, opts)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}

	// Each table is already limited; merge on the shared sequence.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Sequence > records[j].Sequence
	})
	if opts.Limit > 0 && len(records) > opts.Limit {
		records = records[:opts.Limit]
	}
	return records, nil
}
