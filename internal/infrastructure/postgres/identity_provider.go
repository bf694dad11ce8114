package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/JiyaDuseja/inventory-management/internal/domain"
	"github.com/JiyaDuseja/inventory-management/internal/identity"
	"github.com/JiyaDuseja/inventory-management/internal/password"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IdentityProvider implements identity.Provider on top of an identities
// table this package owns. Password hashes never leave this type.
type IdentityProvider struct {
	pool   *pgxpool.Pool
	hasher password.Hasher
}

func NewIdentityProvider(pool *pgxpool.Pool, hasher password.Hasher) *IdentityProvider {
	return &IdentityProvider{pool: pool, hasher: hasher}
}

func (p *IdentityProvider) CreateIdentity(ctx context.Context, email, pw string) (*identity.Identity, error) {
	hash, err := p.hasher.Hash(pw)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	query := `
		INSERT INTO identities (email, password_hash)
		VALUES ($1, $2)
		RETURNING id`

	var id string
	if err := p.pool.QueryRow(ctx, query, email, hash).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("create identity: %w", err)
	}

	return &identity.Identity{ID: id, Email: email}, nil
}

func (p *IdentityProvider) VerifyPassword(ctx context.Context, email, pw string) (*identity.Identity, error) {
	query := `SELECT id, password_hash FROM identities WHERE email = $1`

	var id, hash string
	err := p.pool.QueryRow(ctx, query, email).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Same error as a wrong password: callers must not be able to
			// tell whether the email exists.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}

	ok, err := p.hasher.Verify(pw, hash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	return &identity.Identity{ID: id, Email: email}, nil
}

var _ identity.Provider = (*IdentityProvider)(nil)
