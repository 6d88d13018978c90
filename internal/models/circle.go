package models

import "github.com/tallmate/trust-circle/internal/core/domain"

// Circle is the persisted row of a trust circle.
type Circle struct {
	CircleID    string `json:"circleID" db:"circle_id" gorm:"column:circle_id;primaryKey"`
	Name        string `json:"name" db:"name" gorm:"column:name;not null"`
	Description string `json:"description" db:"description" gorm:"column:description;not null"`
	domain.AuditFields
}

// TableName pins the gorm table to the one created by the migrations.
func (Circle) TableName() string {
	return "circles"
}
