package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tallmate/trust-circle/internal/apperrors"
	portsrepo "github.com/tallmate/trust-circle/internal/core/ports/repositories"
	"github.com/tallmate/trust-circle/internal/repositories/database/lifecycle"
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// DBTX is the part of *pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool  DBTX
	Hooks *lifecycle.Pipeline
}

// beforeCreate runs the create hooks against record.
func (r *BaseRepository) beforeCreate(ctx context.Context, record any) error {
	if err := r.Hooks.Run(ctx, portsrepo.BeforeCreate, record); err != nil {
		return fmt.Errorf("create aborted: %w", err)
	}
	return nil
}

// beforeUpdate runs the update hooks against record.
func (r *BaseRepository) beforeUpdate(ctx context.Context, record any) error {
	if err := r.Hooks.Run(ctx, portsrepo.BeforeUpdate, record); err != nil {
		return fmt.Errorf("update aborted: %w", err)
	}
	return nil
}

// mapWriteError translates driver errors into apperrors where one applies.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, apperrors.ErrDuplicate)
	}
	return err
}
