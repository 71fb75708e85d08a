package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/store"
	"github.com/google/uuid"
)

var (
	ErrExpenseNotFound = errors.New("expense not found or unauthorized")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrCategoryRequired = errors.New("category is required")
)

type ExpenseService struct {
	expenses store.ExpenseStore
}

func NewExpenseService(expenses store.ExpenseStore) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

func (s *ExpenseService) Create(userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, ErrCategoryRequired
	}

	expense := models.Expense{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         req.Title,
		Amount:        req.Amount,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		IsRecurring:   req.IsRecurring,
		BudgetLimit:   req.BudgetLimit,
		Notes:         req.Notes,
		Attachment:    req.Attachment,
		Type:          req.Type,
		Date:          req.Date,
	}
	if expense.Type == "" {
		expense.Type = "expense"
	}
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}
	// Recurrence type only makes sense on recurring expenses.
	if req.IsRecurring && req.RecurrenceType != "" {
		rt := req.RecurrenceType
		expense.RecurrenceType = &rt
	}

	if err := s.expenses.Create(&expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *ExpenseService) List(userID uuid.UUID) ([]models.Expense, error) {
	return s.expenses.FindByUser(userID)
}

func (s *ExpenseService) Get(userID, id uuid.UUID) (*models.Expense, error) {
	expense, err := s.expenses.FindByID(id)
	if err != nil {
		return nil, err
	}
	// Absence and foreign ownership collapse into one answer so a
	// caller can't probe other users' expense ids.
	if expense == nil || expense.UserID != userID {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

func (s *ExpenseService) Update(userID, id uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrTitleRequired
		}
		expense.Title = *req.Title
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		if strings.TrimSpace(*req.Category) == "" {
			return nil, ErrCategoryRequired
		}
		expense.Category = *req.Category
	}
	if req.PaymentMethod != nil {
		expense.PaymentMethod = *req.PaymentMethod
	}
	if req.IsRecurring != nil {
		expense.IsRecurring = *req.IsRecurring
	}
	if req.RecurrenceType != nil {
		rt := *req.RecurrenceType
		expense.RecurrenceType = &rt
	}
	if req.BudgetLimit != nil {
		expense.BudgetLimit = *req.BudgetLimit
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	if req.Attachment != nil {
		expense.Attachment = *req.Attachment
	}
	if req.Type != nil {
		expense.Type = *req.Type
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if !expense.IsRecurring {
		expense.RecurrenceType = nil
	}

	if err := s.expenses.Save(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) Delete(userID, id uuid.UUID) error {
	if _, err := s.Get(userID, id); err != nil {
		return err
	}
	return s.expenses.Delete(id)
}

func (s *ExpenseService) ListByCategory(userID uuid.UUID, category string) ([]models.Expense, error) {
	return s.expenses.FindByUserAndCategory(userID, category)
}

func (s *ExpenseService) ListRecurring(userID uuid.UUID) ([]models.Expense, error) {
	return s.expenses.FindRecurring(userID)
}

// BudgetStatus reduces the user's expenses into per-category spend
// against the budget limit, in a single pass. Only categories with a
// budget limit set appear in the report.
func (s *ExpenseService) BudgetStatus(userID uuid.UUID) (map[string]dto.CategoryBudget, error) {
	expenses, err := s.expenses.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	usage := make(map[string]dto.CategoryBudget)
	for _, e := range expenses {
		if e.BudgetLimit <= 0 {
			continue
		}
		entry, ok := usage[e.Category]
		if !ok {
			entry = dto.CategoryBudget{Limit: e.BudgetLimit}
		}
		entry.Spent += e.Amount
		usage[e.Category] = entry
	}
	return usage, nil
}
