package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// Chat event columns, in scan order.
const (
	chatSessionID   = "session_id"
	chatRule        = "rule"
	chatQuickPrompt = "quick_prompt"
	chatLatencyMs   = "latency_ms"
)

var chatColumns = []string{
	fieldSequence, fieldTimestamp,
	chatSessionID, chatRule, chatQuickPrompt, chatLatencyMs,
}

func (r *eventRepo) AppendChatEvent(ctx context.Context, data ChatEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	spec := sqlgraph.NewCreateSpec(chatTable, sqlgraph.NewFieldSpec(fieldID, field.TypeInt))
	spec.SetField(fieldSequence, field.TypeInt64, seqNum)
	spec.SetField(fieldTimestamp, field.TypeTime, time.Now().UTC())
	spec.SetField(chatSessionID, field.TypeString, data.SessionID)
	spec.SetField(chatRule, field.TypeString, data.Rule)
	spec.SetField(chatQuickPrompt, field.TypeBool, data.QuickPrompt)
	spec.SetField(chatLatencyMs, field.TypeInt64, data.LatencyMs)

	if err := sqlgraph.CreateNode(ctx, r.drv, spec); err != nil {
		return fmt.Errorf("save chat event: %w", err)
	}
	return nil
}

func (r *eventRepo) queryChatEvents(ctx context.Context, opts QueryOpts) ([]EventRecord, error) {
	var records []EventRecord

	spec := opts.querySpec(chatTable, chatColumns)
	spec.ScanValues = func(columns []string) ([]any, error) {
		values := make([]any, len(columns))
		for i, c := range columns {
			switch c {
			case fieldSequence, chatLatencyMs:
				values[i] = new(entsql.NullInt64)
			case fieldTimestamp:
				values[i] = new(entsql.NullTime)
			case chatSessionID, chatRule:
				values[i] = new(entsql.NullString)
			case chatQuickPrompt:
				values[i] = new(entsql.NullBool)
			default:
				return nil, fmt.Errorf("unexpected column %q for chat event", c)
			}
		}
		return values, nil
	}
	spec.Assign = func(columns []string, values []any) error {
		rec := EventRecord{Kind: KindChat}
		d := &ChatEventData{}
		for i, c := range columns {
			switch c {
			case fieldSequence:
				rec.Sequence = values[i].(*entsql.NullInt64).Int64
			case fieldTimestamp:
				rec.Timestamp = values[i].(*entsql.NullTime).Time
			case chatSessionID:
				d.SessionID = values[i].(*entsql.NullString).String
			case chatRule:
				d.Rule = values[i].(*entsql.NullString).String
			case chatQuickPrompt:
				d.QuickPrompt = values[i].(*entsql.NullBool).Bool
			case chatLatencyMs:
				d.LatencyMs = values[i].(*entsql.NullInt64).Int64
			}
		}
		rec.Chat = d
		records = append(records, rec)
		return nil
	}

	if err := sqlgraph.QueryNodes(ctx, r.drv, spec); err != nil {
		return nil, fmt.Errorf("query chat events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) ChatUsageByRule(ctx context.Context) (map[string]int, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(chatRule, entsql.Count("*")).
		From(entsql.Table(chatTable)).
		GroupBy(chatRule).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query chat usage: %w", err)
	}
	defer rows.Close()

	usage := make(map[string]int)
	for rows.Next() {
		var (
			rule string
			n    int
		)
		if err := rows.Scan(&rule, &n); err != nil {
			return nil, fmt.Errorf("scan chat usage: %w", err)
		}
		usage[rule] = n
	}
	return usage, rows.Err()
}
