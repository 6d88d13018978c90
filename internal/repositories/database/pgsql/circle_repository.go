package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tallmate/trust-circle/internal/apperrors"
	"github.com/tallmate/trust-circle/internal/core/domain"
	portsrepo "github.com/tallmate/trust-circle/internal/core/ports/repositories"
	"github.com/tallmate/trust-circle/internal/models"
	"github.com/tallmate/trust-circle/internal/repositories/database/lifecycle"
	"github.com/tallmate/trust-circle/internal/utils/mapping"
)

// PgxCircleRepository stores circles in Postgres through a pgx pool.
type PgxCircleRepository struct {
	BaseRepository
}

// newPgxCircleRepository creates a new repository for circle data.
func newPgxCircleRepository(pool DBTX, hooks *lifecycle.Pipeline) portsrepo.CircleRepositoryFacade {
	return &PgxCircleRepository{
		BaseRepository: BaseRepository{Pool: pool, Hooks: hooks},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CircleRepositoryFacade = (*PgxCircleRepository)(nil)

// SaveCircle inserts a new circle after the create hooks have stamped it.
func (r *PgxCircleRepository) SaveCircle(ctx context.Context, circle *domain.Circle) error {
	if err := r.beforeCreate(ctx, circle); err != nil {
		return err
	}
	modelCircle := mapping.ToModelCircle(*circle)

	query := `
		INSERT INTO circles (circle_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCircle.CircleID,
		modelCircle.Name,
		modelCircle.Description,
		modelCircle.CreatedAt,
		modelCircle.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save circle %s: %w", modelCircle.CircleID, mapWriteError(err))
	}
	return nil
}

// UpdateCircle writes name and description. created_at is never part of the
// statement; the stored timestamps are read back into circle.
func (r *PgxCircleRepository) UpdateCircle(ctx context.Context, circle *domain.Circle) error {
	if err := r.beforeUpdate(ctx, circle); err != nil {
		return err
	}
	modelCircle := mapping.ToModelCircle(*circle)

	query := `
		UPDATE circles
		SET name = $1, description = $2, updated_at = GREATEST($3, created_at)
		WHERE circle_id = $4
		RETURNING created_at, updated_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelCircle.Name,
		modelCircle.Description,
		modelCircle.UpdatedAt,
		modelCircle.CircleID,
	).Scan(&circle.CreatedAt, &circle.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("circle %s: %w", modelCircle.CircleID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to update circle %s: %w", modelCircle.CircleID, err)
	}
	return nil
}

// FindCircleByID retrieves a circle by its ID.
func (r *PgxCircleRepository) FindCircleByID(ctx context.Context, circleID string) (*domain.Circle, error) {
	query := `
		SELECT circle_id, name, description, created_at, updated_at
		FROM circles
		WHERE circle_id = $1;
	`
	var modelCircle models.Circle
	err := r.Pool.QueryRow(ctx, query, circleID).Scan(
		&modelCircle.CircleID,
		&modelCircle.Name,
		&modelCircle.Description,
		&modelCircle.CreatedAt,
		&modelCircle.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find circle by ID %s: %w", circleID, err)
	}

	domainCircle := mapping.ToDomainCircle(modelCircle)
	return &domainCircle, nil
}

// ListCircles retrieves a page of circles, newest first.
func (r *PgxCircleRepository) ListCircles(ctx context.Context, limit int, offset int) ([]domain.Circle, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT circle_id, name, description, created_at, updated_at
		FROM circles
		ORDER BY created_at DESC, circle_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query circles: %w", err)
	}
	defer rows.Close()

	modelCircles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Circle, error) {
		var circle models.Circle
		err := row.Scan(
			&circle.CircleID,
			&circle.Name,
			&circle.Description,
			&circle.CreatedAt,
			&circle.UpdatedAt,
		)
		return circle, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan circles: %w", err)
	}

	return mapping.ToDomainCircleSlice(modelCircles), nil
}

// DeleteCircle removes a circle together with its audit fields.
func (r *PgxCircleRepository) DeleteCircle(ctx context.Context, circleID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM circles WHERE circle_id = $1;`, circleID)
	if err != nil {
		return fmt.Errorf("failed to delete circle %s: %w", circleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("circle %s: %w", circleID, apperrors.ErrNotFound)
	}
	return nil
}
