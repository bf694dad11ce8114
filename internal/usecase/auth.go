package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JiyaDuseja/inventory-management/internal/domain"
	"github.com/JiyaDuseja/inventory-management/internal/identity"
	"github.com/JiyaDuseja/inventory-management/internal/metrics"
	"github.com/JiyaDuseja/inventory-management/internal/repository"
	"github.com/golang-jwt/jwt/v5"
)

// Session tokens are valid for exactly one hour from issuance.
const defaultTokenTTL = 1 * time.Hour

type AuthUsecase struct {
	provider identity.Provider
	users    repository.UserRepository
	jwtKey   []byte
	tokenTTL time.Duration
}

func NewAuthUsecase(provider identity.Provider, users repository.UserRepository, jwtKey []byte) *AuthUsecase {
	return &AuthUsecase{
		provider: provider,
		users:    users,
		jwtKey:   jwtKey,
		tokenTTL: defaultTokenTTL,
	}
}

// Signup registers the credential with the identity provider, then inserts
// the profile row keyed by the new identity's ID. If the second step fails
// the identity is left behind; there is no compensating delete.
func (u *AuthUsecase) Signup(ctx context.Context, email, password string) (string, error) {
	ident, err := u.provider.CreateIdentity(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return "", domain.ErrEmailTaken
		}
		return "", fmt.Errorf("create identity: %w", err)
	}

	if _, err := u.users.Create(ctx, ident.ID, ident.Email); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	metrics.SignupsTotal.Inc()
	return ident.ID, nil
}

// Login verifies the credential with the identity provider and returns a
// signed session token embedding the user ID and email.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	ident, err := u.provider.VerifyPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("denied").Inc()
			return "", domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("verify password: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   ident.ID,
		"email": ident.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(u.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(u.jwtKey)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("sign jwt: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return signed, nil
}
