package repository

import (
	"context"

	"github.com/JiyaDuseja/inventory-management/internal/domain"
)

// ProductPatch carries a partial update. Nil fields are left untouched in
// storage; this is a merge, never a replace.
type ProductPatch struct {
	Name     *string
	Quantity *int64
	Price    *float64
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Quantity == nil && p.Price == nil
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) error
	Delete(ctx context.Context, id string) error
}
