package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/models"
)

type CreateExpenseRequest struct {
	Title          string    `json:"title"`
	Amount         float64   `json:"amount"`
	Category       string    `json:"category"`
	PaymentMethod  string    `json:"payment_method"`
	IsRecurring    bool      `json:"is_recurring"`
	RecurrenceType string    `json:"recurrence_type"`
	BudgetLimit    float64   `json:"budget_limit"`
	Notes          string    `json:"notes"`
	Attachment     string    `json:"attachment"`
	Type           string    `json:"type"`
	Date           time.Time `json:"date"`
}

type UpdateExpenseRequest struct {
	Title          *string    `json:"title"`
	Amount         *float64   `json:"amount"`
	Category       *string    `json:"category"`
	PaymentMethod  *string    `json:"payment_method"`
	IsRecurring    *bool      `json:"is_recurring"`
	RecurrenceType *string    `json:"recurrence_type"`
	BudgetLimit    *float64   `json:"budget_limit"`
	Notes          *string    `json:"notes"`
	Attachment     *string    `json:"attachment"`
	Type           *string    `json:"type"`
	Date           *time.Time `json:"date"`
}

type ExpenseResponse struct {
	Message string         `json:"message"`
	Expense models.Expense `json:"expense"`
}

// CategoryBudget is one category's slice of the budget report.
type CategoryBudget struct {
	Spent float64 `json:"spent"`
	Limit float64 `json:"limit"`
}

type BudgetStatusResponse struct {
	Message     string                    `json:"message"`
	BudgetUsage map[string]CategoryBudget `json:"budgetUsage"`
}
