package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

var oauthProviders = []string{"google", "facebook", "twitter", "linkedin"}

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	expenseHandler *handlers.ExpenseHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth gets a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/protected", middleware.JWTProtected(cfg), authHandler.Protected)

	// Social login: redirect out, callback in, one pair per provider.
	for _, provider := range oauthProviders {
		auth.Get("/"+provider, authHandler.OAuthRedirect(provider))
		auth.Get("/"+provider+"/callback", authHandler.OAuthCallback(provider))
	}

	// Expense routes (JWT required). Literal paths are registered
	// before /:id so "recurring" and "budget-status" don't parse as ids.
	expenses := api.Group("/expenses", middleware.JWTProtected(cfg))
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/recurring", expenseHandler.ListRecurring)
	expenses.Get("/budget-status", expenseHandler.BudgetStatus)
	expenses.Get("/category/:category", expenseHandler.ListByCategory)
	expenses.Get("/:id", expenseHandler.Get)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)
}
