package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	entschema "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/abhisek/pathwise/ent/schema"
)

// Table and column names of the event log.
const (
	analysisTable = "analysis_events"
	chatTable     = "chat_events"

	fieldID        = "id"
	fieldSequence  = "sequence"
	fieldTimestamp = "timestamp"
)

// eventSchemas maps each event table to the ent schema that defines it.
var eventSchemas = []struct {
	table  string
	schema ent.Interface
}{
	{analysisTable, schema.AnalysisEvent{}},
	{chatTable, schema.ChatEvent{}},
}

// migrate creates or upgrades the event tables through ent's migration
// engine.
func migrate(ctx context.Context, drv dialect.Driver) error {
	tables := make([]*entschema.Table, 0, len(eventSchemas))
	for _, es := range eventSchemas {
		t, err := tableFromSchema(es.table, es.schema)
		if err != nil {
			return err
		}
		tables = append(tables, t)
	}

	m, err := entschema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	return m.Create(ctx, tables...)
}

// tableFromSchema builds the migration table for an ent schema: an
// auto-increment id followed by the mixin and schema fields, plus one index
// per declared index.
func tableFromSchema(name string, s ent.Interface) (*entschema.Table, error) {
	fields := []ent.Field{}
	indexes := []ent.Index{}
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	t := entschema.NewTable(name).
		AddPrimary(&entschema.Column{Name: fieldID, Type: field.TypeInt, Increment: true})
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, d.Name, d.Err)
		}
		t.AddColumn(columnFromField(d))
	}
	for _, idx := range indexes {
		d := idx.Descriptor()
		t.AddIndex(indexName(name, d), d.Unique, d.Fields)
	}
	return t, nil
}

func columnFromField(d *field.Descriptor) *entschema.Column {
	name := d.Name
	if d.StorageKey != "" {
		name = d.StorageKey
	}
	c := &entschema.Column{
		Name:     name,
		Type:     d.Info.Type,
		Unique:   d.Unique,
		Nullable: d.Optional,
		Size:     int64(d.Size),
		Comment:  d.Comment,
	}
	// Function defaults such as time.Now are applied when the row is written.
	if d.Default != nil && reflect.TypeOf(d.Default).Kind() != reflect.Func {
		c.Default = d.Default
	}
	return c
}

func indexName(table string, d *index.Descriptor) string {
	if d.StorageKey != "" {
		return d.StorageKey
	}
	return strings.ReplaceAll(table, "_", "") + "_" + strings.Join(d.Fields, "_")
}
