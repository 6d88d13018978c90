package repositories

import (
	"context"

	"github.com/tallmate/trust-circle/internal/core/domain"
)

// CircleReader defines read operations for circle data
type CircleReader interface {
	// FindCircleByID retrieves a circle by its ID.
	FindCircleByID(ctx context.Context, circleID string) (*domain.Circle, error)

	// ListCircles retrieves circles ordered by creation time, newest first.
	ListCircles(ctx context.Context, limit int, offset int) ([]domain.Circle, error)
}

// CircleWriter defines write operations for circle data.
// Save and Update stamp the circle's audit fields in place.
type CircleWriter interface {
	SaveCircle(ctx context.Context, circle *domain.Circle) error
	UpdateCircle(ctx context.Context, circle *domain.Circle) error
	DeleteCircle(ctx context.Context, circleID string) error
}

// CircleRepositoryFacade combines all circle-related repository interfaces
type CircleRepositoryFacade interface {
	CircleReader
	CircleWriter
}
