package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/models"
	"github.com/google/uuid"
)

type fakeExpenseStore struct {
	mu       sync.Mutex
	expenses map[uuid.UUID]*models.Expense
}

func newFakeExpenseStore() *fakeExpenseStore {
	return &fakeExpenseStore{expenses: make(map[uuid.UUID]*models.Expense)}
}

func (f *fakeExpenseStore) Create(e *models.Expense) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *e
	f.expenses[e.ID] = &copied
	return nil
}

func (f *fakeExpenseStore) FindByID(id uuid.UUID) (*models.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.expenses[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeExpenseStore) FindByUser(userID uuid.UUID) ([]models.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Expense
	for _, e := range f.expenses {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeExpenseStore) FindByUserAndCategory(userID uuid.UUID, category string) ([]models.Expense, error) {
	all, _ := f.FindByUser(userID)
	var out []models.Expense
	for _, e := range all {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseStore) FindRecurring(userID uuid.UUID) ([]models.Expense, error) {
	all, _ := f.FindByUser(userID)
	var out []models.Expense
	for _, e := range all {
		if e.IsRecurring {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseStore) Save(e *models.Expense) error {
	return f.Create(e)
}

func (f *fakeExpenseStore) Delete(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.expenses, id)
	return nil
}

func strPtr(s string) *string { return &s }

func f64Ptr(v float64) *float64 { return &v }

func boolPtr(b bool) *bool { return &b }

func TestExpenseCreate(t *testing.T) {
	userID := uuid.New()

	t.Run("validation", func(t *testing.T) {
		svc := NewExpenseService(newFakeExpenseStore())

		tests := []struct {
			name    string
			req     dto.CreateExpenseRequest
			wantErr error
		}{
			{"missing title", dto.CreateExpenseRequest{Amount: 5, Category: "food"}, ErrTitleRequired},
			{"zero amount", dto.CreateExpenseRequest{Title: "Lunch", Category: "food"}, ErrInvalidAmount},
			{"negative amount", dto.CreateExpenseRequest{Title: "Lunch", Amount: -1, Category: "food"}, ErrInvalidAmount},
			{"missing category", dto.CreateExpenseRequest{Title: "Lunch", Amount: 5}, ErrCategoryRequired},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := svc.Create(userID, &tt.req); !errors.Is(err, tt.wantErr) {
					t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
				}
			})
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		svc := NewExpenseService(newFakeExpenseStore())

		expense, err := svc.Create(userID, &dto.CreateExpenseRequest{Title: "Lunch", Amount: 12.5, Category: "food"})
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		if expense.Type != "expense" {
			t.Errorf("Type = %q, want %q", expense.Type, "expense")
		}
		if expense.Date.IsZero() {
			t.Error("Date was not defaulted")
		}
		if expense.UserID != userID {
			t.Errorf("UserID = %s, want %s", expense.UserID, userID)
		}
	})

	t.Run("recurrence type only kept on recurring expenses", func(t *testing.T) {
		svc := NewExpenseService(newFakeExpenseStore())

		nonRecurring, err := svc.Create(userID, &dto.CreateExpenseRequest{
			Title: "One-off", Amount: 5, Category: "misc", RecurrenceType: "monthly",
		})
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		if nonRecurring.RecurrenceType != nil {
			t.Errorf("RecurrenceType = %q, want nil", *nonRecurring.RecurrenceType)
		}

		recurring, err := svc.Create(userID, &dto.CreateExpenseRequest{
			Title: "Rent", Amount: 900, Category: "housing", IsRecurring: true, RecurrenceType: "monthly",
		})
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		if recurring.RecurrenceType == nil || *recurring.RecurrenceType != "monthly" {
			t.Errorf("RecurrenceType = %v, want monthly", recurring.RecurrenceType)
		}
	})
}

func TestExpenseOwnership(t *testing.T) {
	store := newFakeExpenseStore()
	svc := NewExpenseService(store)
	owner := uuid.New()
	stranger := uuid.New()

	expense, err := svc.Create(owner, &dto.CreateExpenseRequest{Title: "Lunch", Amount: 10, Category: "food"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	t.Run("get", func(t *testing.T) {
		if _, err := svc.Get(stranger, expense.ID); !errors.Is(err, ErrExpenseNotFound) {
			t.Errorf("Get() by stranger error = %v, want ErrExpenseNotFound", err)
		}
		if _, err := svc.Get(owner, expense.ID); err != nil {
			t.Errorf("Get() by owner error: %v", err)
		}
	})

	t.Run("update", func(t *testing.T) {
		_, err := svc.Update(stranger, expense.ID, &dto.UpdateExpenseRequest{Title: strPtr("Hijacked")})
		if !errors.Is(err, ErrExpenseNotFound) {
			t.Errorf("Update() by stranger error = %v, want ErrExpenseNotFound", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := svc.Delete(stranger, expense.ID); !errors.Is(err, ErrExpenseNotFound) {
			t.Errorf("Delete() by stranger error = %v, want ErrExpenseNotFound", err)
		}
		if err := svc.Delete(owner, expense.ID); err != nil {
			t.Errorf("Delete() by owner error: %v", err)
		}
		if _, err := svc.Get(owner, expense.ID); !errors.Is(err, ErrExpenseNotFound) {
			t.Errorf("Get() after delete error = %v, want ErrExpenseNotFound", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := svc.Get(owner, uuid.New()); !errors.Is(err, ErrExpenseNotFound) {
			t.Errorf("Get() unknown id error = %v, want ErrExpenseNotFound", err)
		}
	})
}

func TestExpenseUpdate(t *testing.T) {
	svc := NewExpenseService(newFakeExpenseStore())
	userID := uuid.New()

	expense, err := svc.Create(userID, &dto.CreateExpenseRequest{
		Title: "Gym", Amount: 30, Category: "health", IsRecurring: true, RecurrenceType: "monthly",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		updated, err := svc.Update(userID, expense.ID, &dto.UpdateExpenseRequest{Amount: f64Ptr(35)})
		if err != nil {
			t.Fatalf("Update() error: %v", err)
		}
		if updated.Amount != 35 {
			t.Errorf("Amount = %v, want 35", updated.Amount)
		}
		if updated.Title != "Gym" {
			t.Errorf("Title = %q, want Gym", updated.Title)
		}
		if updated.RecurrenceType == nil || *updated.RecurrenceType != "monthly" {
			t.Errorf("RecurrenceType = %v, want monthly", updated.RecurrenceType)
		}
	})

	t.Run("clearing recurring drops recurrence type", func(t *testing.T) {
		updated, err := svc.Update(userID, expense.ID, &dto.UpdateExpenseRequest{IsRecurring: boolPtr(false)})
		if err != nil {
			t.Fatalf("Update() error: %v", err)
		}
		if updated.RecurrenceType != nil {
			t.Errorf("RecurrenceType = %q, want nil", *updated.RecurrenceType)
		}
	})

	t.Run("invalid fields rejected", func(t *testing.T) {
		if _, err := svc.Update(userID, expense.ID, &dto.UpdateExpenseRequest{Amount: f64Ptr(-5)}); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Update() error = %v, want ErrInvalidAmount", err)
		}
		if _, err := svc.Update(userID, expense.ID, &dto.UpdateExpenseRequest{Title: strPtr("  ")}); !errors.Is(err, ErrTitleRequired) {
			t.Errorf("Update() error = %v, want ErrTitleRequired", err)
		}
	})
}

func TestBudgetStatus(t *testing.T) {
	svc := NewExpenseService(newFakeExpenseStore())
	userID := uuid.New()
	now := time.Now()

	seed := []dto.CreateExpenseRequest{
		{Title: "Groceries", Amount: 80, Category: "food", BudgetLimit: 400, Date: now},
		{Title: "Dinner out", Amount: 45, Category: "food", BudgetLimit: 400, Date: now},
		{Title: "Rent", Amount: 900, Category: "housing", BudgetLimit: 1000, Date: now},
		{Title: "Cinema", Amount: 15, Category: "leisure", Date: now}, // no budget limit
	}
	for _, req := range seed {
		if _, err := svc.Create(userID, &req); err != nil {
			t.Fatalf("Create(%s) error: %v", req.Title, err)
		}
	}

	usage, err := svc.BudgetStatus(userID)
	if err != nil {
		t.Fatalf("BudgetStatus() error: %v", err)
	}

	if len(usage) != 2 {
		t.Fatalf("len(usage) = %d, want 2: %+v", len(usage), usage)
	}

	food := usage["food"]
	if food.Spent != 125 || food.Limit != 400 {
		t.Errorf("food = %+v, want spent 125 limit 400", food)
	}
	housing := usage["housing"]
	if housing.Spent != 900 || housing.Limit != 1000 {
		t.Errorf("housing = %+v, want spent 900 limit 1000", housing)
	}
	if _, ok := usage["leisure"]; ok {
		t.Error("category without a budget limit appeared in the report")
	}
}

func TestListFilters(t *testing.T) {
	svc := NewExpenseService(newFakeExpenseStore())
	userID := uuid.New()
	other := uuid.New()

	if _, err := svc.Create(userID, &dto.CreateExpenseRequest{Title: "Rent", Amount: 900, Category: "housing", IsRecurring: true, RecurrenceType: "monthly"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(userID, &dto.CreateExpenseRequest{Title: "Lunch", Amount: 12, Category: "food"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(other, &dto.CreateExpenseRequest{Title: "Other rent", Amount: 700, Category: "housing"}); err != nil {
		t.Fatal(err)
	}

	recurring, err := svc.ListRecurring(userID)
	if err != nil {
		t.Fatalf("ListRecurring() error: %v", err)
	}
	if len(recurring) != 1 || recurring[0].Title != "Rent" {
		t.Errorf("ListRecurring() = %+v, want just Rent", recurring)
	}

	housing, err := svc.ListByCategory(userID, "housing")
	if err != nil {
		t.Fatalf("ListByCategory() error: %v", err)
	}
	if len(housing) != 1 || housing[0].Title != "Rent" {
		t.Errorf("ListByCategory() = %+v, want just the user's Rent", housing)
	}

	all, err := svc.List(userID)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("List() returned %d expenses, want 2", len(all))
	}
}
