package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// JWTManager issues and validates bearer access tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// GenerateAccessToken creates a signed HS256 JWT with the user ID as subject.
// It returns the token and its expiry.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateAccessToken parses and validates a JWT access token and returns the
// subject user ID. Expired tokens fail with domain.ErrTokenExpired, every
// other defect with domain.ErrTokenInvalid.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, fmt.Errorf("token is empty: %w", domain.ErrTokenInvalid)
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, domain.ErrTokenExpired
		}
		return uuid.Nil, fmt.Errorf("parse token: %v: %w", err, domain.ErrTokenInvalid)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token claims: %w", domain.ErrTokenInvalid)
	}

	if claims.Issuer != m.issuer {
		return uuid.Nil, fmt.Errorf("invalid issuer: expected %s, got %s: %w", m.issuer, claims.Issuer, domain.ErrTokenInvalid)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject UUID: %v: %w", err, domain.ErrTokenInvalid)
	}

	return userID, nil
}
