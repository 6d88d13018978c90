package gormdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/tallmate/trust-circle/internal/apperrors"
	"github.com/tallmate/trust-circle/internal/core/domain"
	portsrepo "github.com/tallmate/trust-circle/internal/core/ports/repositories"
	"github.com/tallmate/trust-circle/internal/models"
	"github.com/tallmate/trust-circle/internal/utils/mapping"
	"gorm.io/gorm"
)

// CircleRepository stores circles through gorm.
type CircleRepository struct {
	db *gorm.DB
}

// NewCircleRepository creates a circle repository on db. Auditing hooks must
// be registered on db through a Registrar.
func NewCircleRepository(db *gorm.DB) *CircleRepository {
	return &CircleRepository{db: db}
}

var _ portsrepo.CircleRepositoryFacade = (*CircleRepository)(nil)

// NewRepositoryProvider builds the gorm repositories.
func NewRepositoryProvider(db *gorm.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CircleRepo: NewCircleRepository(db),
	}
}

func (r *CircleRepository) SaveCircle(ctx context.Context, circle *domain.Circle) error {
	row := mapping.ToModelCircle(*circle)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("circle %s: %w", row.CircleID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save circle %s: %w", row.CircleID, err)
	}
	circle.AuditFields = row.AuditFields
	return nil
}

// UpdateCircle writes name, description and updated_at. The stored
// created_at is loaded first so the update hooks stamp against it and the
// caller sees the persisted value.
func (r *CircleRepository) UpdateCircle(ctx context.Context, circle *domain.Circle) error {
	row := mapping.ToModelCircle(*circle)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored models.Circle
		err := tx.Select("created_at").Where("circle_id = ?", row.CircleID).Take(&stored).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		row.CreatedAt = stored.CreatedAt

		res := tx.Model(&row).Select("name", "description", "updated_at").Updates(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		circle.AuditFields = row.AuditFields
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("circle %s: %w", row.CircleID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to update circle %s: %w", row.CircleID, err)
	}
	return nil
}

func (r *CircleRepository) FindCircleByID(ctx context.Context, circleID string) (*domain.Circle, error) {
	var row models.Circle
	err := r.db.WithContext(ctx).Where("circle_id = ?", circleID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find circle by ID %s: %w", circleID, err)
	}
	circle := mapping.ToDomainCircle(row)
	return &circle, nil
}

func (r *CircleRepository) ListCircles(ctx context.Context, limit int, offset int) ([]domain.Circle, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var rows []models.Circle
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("circle_id").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list circles: %w", err)
	}
	return mapping.ToDomainCircleSlice(rows), nil
}

func (r *CircleRepository) DeleteCircle(ctx context.Context, circleID string) error {
	res := r.db.WithContext(ctx).Where("circle_id = ?", circleID).Delete(&models.Circle{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete circle %s: %w", circleID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("circle %s: %w", circleID, apperrors.ErrNotFound)
	}
	return nil
}
