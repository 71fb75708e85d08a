package oauth

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/config"
)

// BuildRegistry constructs the provider registry from configuration.
// Providers without credentials are skipped, so a deployment can enable
// any subset of the four.
func BuildRegistry(cfg *config.Config) *Registry {
	registry := NewRegistry()
	callback := func(provider string) string {
		return cfg.BaseURL + "/api/auth/" + provider + "/callback"
	}

	if cfg.GoogleClientID != "" {
		registry.Register(NewGoogle(cfg.GoogleClientID, cfg.GoogleClientSecret, callback("google")))
	}
	if cfg.FacebookClientID != "" {
		registry.Register(NewFacebook(cfg.FacebookClientID, cfg.FacebookClientSecret, callback("facebook")))
	}
	if cfg.TwitterClientID != "" {
		registry.Register(NewTwitter(cfg.TwitterClientID, cfg.TwitterClientSecret, callback("twitter")))
	}
	if cfg.LinkedInClientID != "" {
		registry.Register(NewLinkedIn(cfg.LinkedInClientID, cfg.LinkedInClientSecret, callback("linkedin")))
	}

	slog.Info("oauth providers configured", "providers", registry.Names())
	return registry
}
