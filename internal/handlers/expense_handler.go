package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func isValidationErr(err error) bool {
	return errors.Is(err, services.ErrTitleRequired) ||
		errors.Is(err, services.ErrInvalidAmount) ||
		errors.Is(err, services.ErrCategoryRequired)
}

func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	expense, err := h.expenseService.Create(userID, &req)
	if err != nil {
		if isValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to create expense"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ExpenseResponse{
		Message: "Expense added successfully",
		Expense: *expense,
	})
}

func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	expenses, err := h.expenseService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch expenses"})
	}
	return c.JSON(expenses)
}

func (h *ExpenseHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid expense ID"})
	}

	expense, err := h.expenseService.Get(userID, id)
	if err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch expense"})
	}
	return c.JSON(expense)
}

func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid expense ID"})
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	expense, err := h.expenseService.Update(userID, id, &req)
	if err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		if isValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update expense"})
	}

	return c.JSON(dto.ExpenseResponse{
		Message: "Expense updated successfully",
		Expense: *expense,
	})
}

func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid expense ID"})
	}

	if err := h.expenseService.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to delete expense"})
	}

	return c.JSON(dto.MessageResponse{Message: "Expense deleted successfully"})
}

func (h *ExpenseHandler) ListByCategory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	expenses, err := h.expenseService.ListByCategory(userID, c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch expenses"})
	}
	return c.JSON(expenses)
}

func (h *ExpenseHandler) ListRecurring(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	expenses, err := h.expenseService.ListRecurring(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch recurring expenses"})
	}
	return c.JSON(expenses)
}

func (h *ExpenseHandler) BudgetStatus(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	usage, err := h.expenseService.BudgetStatus(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to compute budget status"})
	}

	return c.JSON(dto.BudgetStatusResponse{
		Message:     "Budget status retrieved",
		BudgetUsage: usage,
	})
}
