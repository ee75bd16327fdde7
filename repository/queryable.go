package repository

import (
	"context"
	"errors"
	"fmt"

	"raffler/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryable is satisfied by both *pgxpool.Pool and pgx.Tx, so a repository
// can run against the pool or inside a unit of work
type Queryable interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapWriteError translates constraint violations into domain errors
func mapWriteError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s already exists", domain.ErrConflict, what)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s references a missing record (%s)", domain.ErrNotFound, what, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("failed to write %s: %w", what, err)
}

// likePattern builds an ILIKE substring pattern with wildcards in term escaped
func likePattern(term string) string {
	escaped := make([]rune, 0, len(term)+2)
	escaped = append(escaped, '%')
	for _, r := range term {
		if r == '\\' || r == '%' || r == '_' {
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, r)
	}
	escaped = append(escaped, '%')
	return string(escaped)
}
