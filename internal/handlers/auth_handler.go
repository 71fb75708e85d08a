package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/oauth"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

const stateCookie = "oauthstate"

type AuthHandler struct {
	authService  *services.AuthService
	providers    *oauth.Registry
	dashboardURL string
}

func NewAuthHandler(authService *services.AuthService, providers *oauth.Registry, dashboardURL string) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		providers:    providers,
		dashboardURL: dashboardURL,
	}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.authService.Signup(&req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "User already exists",
			})
		}
		if err.Error() == "email and password are required" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("signup failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid email or password",
			})
		}
		slog.Error("login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(resp)
}

// Logout clears the client-side cookie artifact. Tokens are stateless,
// so there is nothing to revoke server-side.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie("token")
	return c.JSON(dto.MessageResponse{Message: "Logout successful"})
}

// OAuthRedirect sends the browser to the provider's consent page with a
// fresh CSRF state bound to a short-lived cookie.
func (h *AuthHandler) OAuthRedirect(provider string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := h.providers.Get(provider)
		if p == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Unknown or unconfigured oauth provider",
			})
		}

		state, err := generateState()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to start oauth flow",
			})
		}

		c.Cookie(&fiber.Cookie{
			Name:     stateCookie,
			Value:    state,
			Expires:  time.Now().Add(10 * time.Minute),
			HTTPOnly: true,
		})

		return c.Redirect(p.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
	}
}

// OAuthCallback finishes the provider handshake and redirects to the
// dashboard with the issued token as a query parameter.
func (h *AuthHandler) OAuthCallback(provider string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := h.providers.Get(provider)
		if p == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Unknown or unconfigured oauth provider",
			})
		}

		if state := c.Cookies(stateCookie); state == "" || state != c.Query("state") {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid oauth state",
			})
		}
		c.ClearCookie(stateCookie)

		code := c.Query("code")
		if code == "" {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Error: true, Message: "OAuth provider error: no authorization code",
			})
		}

		profile, err := p.FetchProfile(c.UserContext(), code)
		if err != nil {
			slog.Error("oauth handshake failed", "provider", provider, "error", err)
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Error: true, Message: "OAuth provider error",
			})
		}

		tok, err := h.authService.HandleOAuthProfile(provider, profile)
		if err != nil {
			if errors.Is(err, services.ErrMissingEmail) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
					Error: true, Message: "OAuth provider did not supply an email address",
				})
			}
			slog.Error("oauth sign-in failed", "provider", provider, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}

		return c.Redirect(h.dashboardURL+"?token="+tok, fiber.StatusFound)
	}
}

// Protected is the sample JWT-guarded route; it echoes the identity the
// verified token resolves to.
func (h *AuthHandler) Protected(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.authService.CurrentUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.ProtectedResponse{
		Message: "You have access!",
		User:    dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
