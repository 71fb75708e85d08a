package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is keyed by email regardless of origin: a local signup and an
// OAuth sign-in sharing an email resolve to the same record. Password
// holds a bcrypt hash for local users and is empty for OAuth-only users.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string         `gorm:"size:255" json:"name"`
	Email        string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password     string         `json:"-"`
	AuthProvider string         `gorm:"size:50;default:'local'" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
