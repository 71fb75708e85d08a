package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/mailer"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/oauth"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	providers *oauth.Registry
	mail      *mailer.SMTPSender
}

func NewHealthHandler(providers *oauth.Registry, mail *mailer.SMTPSender) *HealthHandler {
	return &HealthHandler{providers: providers, mail: mail}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	mailStatus := "not configured"
	if h.mail.Configured() {
		mailStatus = "configured"
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Mailer:    mailStatus,
		Providers: len(h.providers.Names()),
	})
}
