package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/oauth"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/store"
	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/token"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateUser = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown email and wrong
	// password so responses don't reveal which check failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingEmail       = errors.New("oauth provider did not supply an email address")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	users  store.UserStore
	issuer *token.Issuer
}

func NewAuthService(users store.UserStore, issuer *token.Issuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	existing, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Password:     string(hash),
		AuthProvider: "local",
	}

	// Find-then-create is not serialized; concurrent signups for the
	// same email race here and the unique index on users.email rejects
	// the loser.
	if err := s.users.Create(&user); err != nil {
		return nil, err
	}

	tok, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", user.ID.String())
	return &dto.AuthResponse{Message: "User registered successfully", Token: tok}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tok, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Message: "Login successful", Token: tok}, nil
}

// HandleOAuthProfile resolves a provider profile into a user and mints
// a session token. The first granted email is the canonical key; all
// four providers funnel through this one find-or-create path.
func (s *AuthService) HandleOAuthProfile(provider string, profile *oauth.Profile) (string, error) {
	if len(profile.Emails) == 0 {
		return "", ErrMissingEmail
	}
	email := profile.Emails[0]

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", err
	}

	if user == nil {
		user = &models.User{
			ID:           uuid.New(),
			Name:         profile.Name,
			Email:        email,
			AuthProvider: provider,
		}
		if err := s.users.Create(user); err != nil {
			return "", err
		}
		slog.Info("new user created from oauth", "user_id", user.ID.String(), "provider", provider)
	}

	return s.issuer.Issue(user.ID)
}

// CurrentUser loads the identity a verified token refers to.
func (s *AuthService) CurrentUser(id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
