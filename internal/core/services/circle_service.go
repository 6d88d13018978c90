package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/tallmate/trust-circle/internal/apperrors"
	"github.com/tallmate/trust-circle/internal/core/domain"
	portsrepo "github.com/tallmate/trust-circle/internal/core/ports/repositories"
	portssvc "github.com/tallmate/trust-circle/internal/core/ports/services"
	"github.com/tallmate/trust-circle/internal/dto"
)

type circleService struct {
	BaseService
	circleRepo portsrepo.CircleRepositoryFacade
}

// NewCircleService creates a circle service. Timestamps are left to the
// repository's auditing hooks.
func NewCircleService(circleRepo portsrepo.CircleRepositoryFacade) portssvc.CircleSvcFacade {
	return &circleService{circleRepo: circleRepo}
}

func (s *circleService) CreateCircle(ctx context.Context, req dto.CreateCircleRequest) (*domain.Circle, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: circle name cannot be blank", apperrors.ErrValidation)
	}

	circle := domain.Circle{
		CircleID:    uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.circleRepo.SaveCircle(ctx, &circle); err != nil {
		s.LogError(ctx, err, "Failed to save circle", slog.String("circle_id", circle.CircleID))
		return nil, fmt.Errorf("failed to create circle in service: %w", err)
	}

	s.LogInfo(ctx, "Circle created",
		slog.String("circle_id", circle.CircleID),
		slog.Time("created_at", circle.CreatedAt))
	return &circle, nil
}

func (s *circleService) GetCircleByID(ctx context.Context, circleID string) (*domain.Circle, error) {
	circle, err := s.circleRepo.FindCircleByID(ctx, circleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get circle by ID in service: %w", err)
	}
	return circle, nil
}

func (s *circleService) ListCircles(ctx context.Context, limit int, offset int) ([]domain.Circle, error) {
	circles, err := s.circleRepo.ListCircles(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list circles in service: %w", err)
	}
	if circles == nil {
		return []domain.Circle{}, nil
	}
	return circles, nil
}

// UpdateCircle applies the non-nil fields of req to the stored circle.
func (s *circleService) UpdateCircle(ctx context.Context, circleID string, req dto.UpdateCircleRequest) (*domain.Circle, error) {
	circle, err := s.circleRepo.FindCircleByID(ctx, circleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find circle for update: %w", err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: circle name cannot be blank", apperrors.ErrValidation)
		}
		circle.Name = name
	}
	if req.Description != nil {
		circle.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.circleRepo.UpdateCircle(ctx, circle); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update circle", slog.String("circle_id", circleID))
		}
		return nil, fmt.Errorf("failed to update circle in service: %w", err)
	}

	s.LogDebug(ctx, "Circle updated",
		slog.String("circle_id", circleID),
		slog.Time("updated_at", circle.UpdatedAt))
	return circle, nil
}

func (s *circleService) DeleteCircle(ctx context.Context, circleID string) error {
	if err := s.circleRepo.DeleteCircle(ctx, circleID); err != nil {
		return fmt.Errorf("failed to delete circle in service: %w", err)
	}
	return nil
}
