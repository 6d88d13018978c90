package domain

import "time"

// AuditFields holds the creation and modification timestamps of a persisted entity.
// They are written by the persistence layer's auditing hooks, never by application code.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

// Audit exposes the embedded audit fields for stamping.
func (a *AuditFields) Audit() *AuditFields {
	return a
}

// Auditable is implemented by any entity embedding AuditFields.
type Auditable interface {
	Audit() *AuditFields
}
