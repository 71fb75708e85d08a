package store

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseStore wraps persistence of expense records. All list methods
// return newest-first by expense date.
type ExpenseStore interface {
	Create(expense *models.Expense) error
	FindByID(id uuid.UUID) (*models.Expense, error)
	FindByUser(userID uuid.UUID) ([]models.Expense, error)
	FindByUserAndCategory(userID uuid.UUID, category string) ([]models.Expense, error)
	FindRecurring(userID uuid.UUID) ([]models.Expense, error)
	Save(expense *models.Expense) error
	Delete(id uuid.UUID) error
}

type GormExpenseStore struct {
	db *gorm.DB
}

func NewGormExpenseStore(db *gorm.DB) *GormExpenseStore {
	return &GormExpenseStore{db: db}
}

func (s *GormExpenseStore) Create(expense *models.Expense) error {
	if err := s.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (s *GormExpenseStore) FindByID(id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return &expense, nil
}

func (s *GormExpenseStore) FindByUser(userID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (s *GormExpenseStore) FindByUserAndCategory(userID uuid.UUID, category string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.Where("user_id = ? AND category = ?", userID, category).
		Order("date DESC").Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by category: %w", err)
	}
	return expenses, nil
}

func (s *GormExpenseStore) FindRecurring(userID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.Where("user_id = ? AND is_recurring = true", userID).
		Order("date DESC").Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}
	return expenses, nil
}

func (s *GormExpenseStore) Save(expense *models.Expense) error {
	if err := s.db.Save(expense).Error; err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

func (s *GormExpenseStore) Delete(id uuid.UUID) error {
	if err := s.db.Delete(&models.Expense{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
