package domain

// Circle is a named trust circle.
type Circle struct {
	CircleID    string `json:"circleID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}
