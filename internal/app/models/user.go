package models

import (
	"time"
)

// User defines an API account
type User struct {
	ID           string    `json:"_id" db:"id" example:"665f1c2e8b3f4a2d9c0e1a33"`           // Unique identifier
	Email        string    `json:"email" db:"email" example:"admin@example.com"`             // Lower-cased, unique email address
	PasswordHash string    `json:"-" db:"password"`                                          // bcrypt digest (excluded from JSON)
	Name         string    `json:"name" db:"name" example:"Ada"`                             // Display name
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
