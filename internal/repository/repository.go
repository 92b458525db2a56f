// Package repository is the only place SQL is written.
//
// Each repository validates what it is about to persist, runs one
// parameterised statement per call, and reports outcomes as the sentinel
// errors in package model. Failures are logged on the logger carried by the
// request context.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DB is the subset of *pgxpool.Pool the repositories use. Tests substitute
// their own implementation.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
