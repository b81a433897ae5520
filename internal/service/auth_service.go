package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"esg-maturity-backend/internal/model"
	"esg-maturity-backend/internal/repository"
	"esg-maturity-backend/utilities"
)

// TokenPair is returned on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService interface
type AuthService interface {
	Register(ctx context.Context, user *model.User) error
	Login(ctx context.Context, email, password string) (*model.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *utilities.TokenManager
	cost     int
}

// NewAuthService initializes authentication service
func NewAuthService(userRepo repository.UserRepository, tokens *utilities.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, cost: bcrypt.DefaultCost}
}

// Register stores a new respondent. Roles other than respondent are only
// granted through EnsureAdmin.
func (s *authService) Register(ctx context.Context, user *model.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Password == "" {
		return ErrEmptyPassword
	}

	exists, err := s.userRepo.EmailExists(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""
	user.Role = model.RoleRespondent

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to store user in database: %w", err)
	}
	utilities.Info("registered user %d (%s)", user.ID, user.Email)
	return nil
}

// Login function to authenticate user
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, TokenPair, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		utilities.Warn("failed login for %s", user.Email)
		return nil, TokenPair{}, ErrInvalidCredentials
	}

	access, refresh, err := s.tokens.GenerateTokens(user)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("issue tokens: %w", err)
	}
	return user, TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh issues a new token pair from a valid refresh token. Role and email
// come from the current user record, so role changes and deleted accounts
// take effect at the next refresh.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.tokens.ValidateToken(refreshToken, true)
	if err != nil {
		return TokenPair{}, err
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return TokenPair{}, utilities.ErrInvalidToken
	}
	if err != nil {
		return TokenPair{}, fmt.Errorf("load user: %w", err)
	}

	access, refresh, err := s.tokens.GenerateTokens(user)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue tokens: %w", err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// EnsureAdmin creates the administrator account if the email is not taken.
// It reports whether a new account was created.
func (s *authService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false, nil
	}
	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return false, nil
	}
	if password == "" {
		return false, ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	admin := &model.User{Name: "Administrador", Email: email, PasswordHash: string(hash), Role: model.RoleAdmin}
	if err := s.userRepo.CreateUser(ctx, admin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	utilities.Info("created administrator %s", email)
	return true, nil
}
