package repository

import (
	"context"

	"github.com/JiyaDuseja/inventory-management/internal/domain"
)

type UserRepository interface {
	// Create inserts a user row keyed by the identity provider's ID.
	Create(ctx context.Context, id, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
