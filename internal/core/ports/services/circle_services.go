package services

import (
	"context"

	"github.com/tallmate/trust-circle/internal/core/domain"
	"github.com/tallmate/trust-circle/internal/dto"
)

// CircleReaderSvc defines read operations for circle data
type CircleReaderSvc interface {
	// GetCircleByID retrieves a specific circle by its ID.
	GetCircleByID(ctx context.Context, circleID string) (*domain.Circle, error)

	// ListCircles retrieves a page of circles, newest first.
	ListCircles(ctx context.Context, limit int, offset int) ([]domain.Circle, error)
}

// CircleWriterSvc defines write operations for circle data
type CircleWriterSvc interface {
	CreateCircle(ctx context.Context, req dto.CreateCircleRequest) (*domain.Circle, error)
	UpdateCircle(ctx context.Context, circleID string, req dto.UpdateCircleRequest) (*domain.Circle, error)
	DeleteCircle(ctx context.Context, circleID string) error
}

// CircleSvcFacade combines all circle-related service interfaces
type CircleSvcFacade interface {
	CircleReaderSvc
	CircleWriterSvc
}
