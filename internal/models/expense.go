package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is a single spending (or income) record owned by a user.
// RecurrenceType is only meaningful when IsRecurring is set and is
// cleared otherwise. BudgetLimit feeds the per-category budget report.
type Expense struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string         `gorm:"not null;size:255" json:"title"`
	Amount         float64        `gorm:"not null" json:"amount"`
	Category       string         `gorm:"not null;size:100;index" json:"category"`
	PaymentMethod  string         `gorm:"size:50" json:"payment_method,omitempty"`
	IsRecurring    bool           `gorm:"default:false;index" json:"is_recurring"`
	RecurrenceType *string        `gorm:"size:20" json:"recurrence_type,omitempty"`
	BudgetLimit    float64        `json:"budget_limit,omitempty"`
	Notes          string         `gorm:"size:1000" json:"notes,omitempty"`
	Attachment     string         `gorm:"type:text" json:"attachment,omitempty"`
	Type           string         `gorm:"size:20;default:'expense'" json:"type"`
	Date           time.Time      `gorm:"not null;index" json:"date"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	User           User           `gorm:"foreignKey:UserID" json:"-"`
}
