package tools

import (
	"context"
	"maps"
	"slices"

	"github.com/crystaldolphin/supatools/internal/schema"
	"github.com/crystaldolphin/supatools/internal/supabase"
)

// NewCreateRecordTool inserts data into a table and returns the inserted rows.
func NewCreateRecordTool(store RecordStore) Tool {
	return newTool(schema.ToolCreateRecord, func(ctx context.Context, a schema.CreateRecordArgs) (any, error) {
		q := supabase.From(a.Table).Insert(a.Data).Select(a.Returning...)
		return store.Execute(ctx, q)
	})
}

// NewReadRecordsTool selects rows. Filter values that are objects expand into
// one constraint per operator.
func NewReadRecordsTool(store RecordStore) Tool {
	return newTool(schema.ToolReadRecords, func(ctx context.Context, a schema.ReadRecordsArgs) (any, error) {
		q := applyOperators(supabase.From(a.Table).Select(a.Select...), a.Filter)
		return store.Execute(ctx, q)
	})
}

func NewUpdateRecordTool(store RecordStore) Tool {
	return newTool(schema.ToolUpdateRecord, func(ctx context.Context, a schema.UpdateRecordArgs) (any, error) {
		q := applyEq(supabase.From(a.Table).Update(a.Data), a.Filter).Select(a.Returning...)
		return store.Execute(ctx, q)
	})
}

func NewDeleteRecordTool(store RecordStore) Tool {
	return newTool(schema.ToolDeleteRecord, func(ctx context.Context, a schema.DeleteRecordArgs) (any, error) {
		q := applyEq(supabase.From(a.Table).Delete(), a.Filter).Select(a.Returning...)
		return store.Execute(ctx, q)
	})
}

// applyEq adds an equality constraint per filter entry, in column order.
func applyEq(q supabase.Query, f schema.Filter) supabase.Query {
	for _, col := range slices.Sorted(maps.Keys(f)) {
		q = q.Eq(col, f[col])
	}
	return q
}

// applyOperators is applyEq, except that an object value such as
// {"gt": 18, "lt": 65} adds one constraint per operator, in operator order.
func applyOperators(q supabase.Query, f schema.Filter) supabase.Query {
	for _, col := range slices.Sorted(maps.Keys(f)) {
		ops, ok := f[col].(map[string]any)
		if !ok {
			q = q.Eq(col, f[col])
			continue
		}
		for _, op := range slices.Sorted(maps.Keys(ops)) {
			q = q.Filter(col, op, ops[op])
		}
	}
	return q
}
