package mapping

import (
	"github.com/tallmate/trust-circle/internal/core/domain"
	"github.com/tallmate/trust-circle/internal/models"
)

// ToModelCircle converts a domain Circle to a model Circle
func ToModelCircle(d domain.Circle) models.Circle {
	return models.Circle{
		CircleID:    d.CircleID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: d.AuditFields,
	}
}

// ToDomainCircle converts a model Circle to a domain Circle
func ToDomainCircle(m models.Circle) domain.Circle {
	return domain.Circle{
		CircleID:    m.CircleID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: m.AuditFields,
	}
}

// ToDomainCircleSlice converts a slice of model Circles to domain Circles
func ToDomainCircleSlice(ms []models.Circle) []domain.Circle {
	ds := make([]domain.Circle, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCircle(m)
	}
	return ds
}
