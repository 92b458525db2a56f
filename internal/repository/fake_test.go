package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
)

// fakeDB answers queries through optional function fields. A nil field
// fails the test when called, which is how tests assert that validation
// stops a request before any SQL runs.
type fakeDB struct {
	t        *testing.T
	query    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	queryRow func(ctx context.Context, sql string, args ...any) pgx.Row
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.query == nil {
		f.t.Fatalf("unexpected Query: %s", sql)
	}
	return f.query(ctx, sql, args...)
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.queryRow == nil {
		f.t.Fatalf("unexpected QueryRow: %s", sql)
	}
	return f.queryRow(ctx, sql, args...)
}

// fakeRow scans fixed values positionally into *int and *string targets.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}

	for i, d := range dest {
		switch target := d.(type) {
		case *int:
			*target = r.values[i].(int)
		case *string:
			*target = r.values[i].(string)
		}
	}

	return nil
}
