package dto

import (
	"time"

	"github.com/tallmate/trust-circle/internal/core/domain"
)

// CreateCircleRequest defines the data needed to create a new circle.
// Timestamps are assigned by the persistence layer and cannot be supplied.
type CreateCircleRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateCircleRequest defines the data needed to update a circle.
type UpdateCircleRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// CircleResponse defines the data returned for a circle.
type CircleResponse struct {
	CircleID    string    `json:"circleID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListCirclesResponse wraps a page of circles.
type ListCirclesResponse struct {
	Circles   []CircleResponse `json:"circles"`
	NextToken string           `json:"nextToken,omitempty"`
}

// ToCircleResponse converts a domain Circle to a CircleResponse DTO
func ToCircleResponse(c *domain.Circle) CircleResponse {
	return CircleResponse{
		CircleID:    c.CircleID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToListCircleResponse converts a slice of domain Circles to a slice of CircleResponse DTOs
func ToListCircleResponse(circles []domain.Circle) []CircleResponse {
	res := make([]CircleResponse, len(circles))
	for i := range circles {
		res[i] = ToCircleResponse(&circles[i])
	}
	return res
}
