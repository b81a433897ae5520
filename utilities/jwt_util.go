package utilities

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"esg-maturity-backend/internal/config"
	"esg-maturity-backend/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid or malformed token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims struct
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates access and refresh tokens.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
}

// NewTokenManager builds a TokenManager from the authentication settings.
func NewTokenManager(cfg config.AuthenticationConfig) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessExpiry:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
		refreshExpiry: time.Duration(cfg.RefreshTTLHours) * time.Hour,
		now:           time.Now,
	}
}

// GenerateTokens creates both access and refresh tokens
func (m *TokenManager) GenerateTokens(user *model.User) (string, string, error) {
	accessToken, err := m.generateToken(user.ID, user.Email, user.Role, m.accessSecret, m.accessExpiry)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := m.generateToken(user.ID, user.Email, user.Role, m.refreshSecret, m.refreshExpiry)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken verifies the token and extracts claims
func (m *TokenManager) ValidateToken(tokenStr string, isRefresh bool) (*Claims, error) {
	secret := m.accessSecret
	if isRefresh {
		secret = m.refreshSecret
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (m *TokenManager) generateToken(userID uint, email, role string, secret []byte, expiry time.Duration) (string, error) {
	now := m.now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
