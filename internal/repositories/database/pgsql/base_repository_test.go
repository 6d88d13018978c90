package pgsql

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/tallmate/trust-circle/internal/apperrors"
	"github.com/tallmate/trust-circle/internal/core/domain"
	portsrepo "github.com/tallmate/trust-circle/internal/core/ports/repositories"
	"github.com/tallmate/trust-circle/internal/repositories/database/lifecycle"
)

func TestMapWriteError_UniqueViolation(t *testing.T) {
	err := mapWriteError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "circles_pkey"})

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Contains(t, err.Error(), "circles_pkey")
}

func TestMapWriteError_OtherErrorsUntouched(t *testing.T) {
	other := &pgconn.PgError{Code: "23503"}
	assert.Same(t, other, mapWriteError(other))

	plain := fmt.Errorf("connection reset")
	assert.Equal(t, plain, mapWriteError(plain))
}

func TestSaveCircle_FailingHookSkipsDatabase(t *testing.T) {
	hooks := lifecycle.New()
	hooks.RegisterHook(portsrepo.BeforeCreate, "reject", func(ctx context.Context, record any) error {
		return assert.AnError
	})
	// A nil pool would panic if the statement were executed.
	repo := newPgxCircleRepository(nil, hooks)

	err := repo.SaveCircle(context.Background(), &domain.Circle{CircleID: "c1"})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "create aborted")
}

func TestUpdateCircle_FailingHookSkipsDatabase(t *testing.T) {
	hooks := lifecycle.New()
	hooks.RegisterHook(portsrepo.BeforeUpdate, "reject", func(ctx context.Context, record any) error {
		return assert.AnError
	})
	repo := newPgxCircleRepository(nil, hooks)

	err := repo.UpdateCircle(context.Background(), &domain.Circle{CircleID: "c1"})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "update aborted")
}
