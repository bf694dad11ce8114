package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/JiyaDuseja/inventory-management/internal/domain"
	"github.com/JiyaDuseja/inventory-management/internal/repository"
)

type ProductUsecase struct {
	products repository.ProductRepository
	now      func() time.Time
}

func NewProductUsecase(products repository.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products, now: time.Now}
}

type CreateProductInput struct {
	Name      string
	Quantity  int64
	Price     float64
	CreatedBy string
}

func (u *ProductUsecase) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:      input.Name,
		Quantity:  input.Quantity,
		Price:     input.Price,
		CreatedBy: input.CreatedBy,
		CreatedAt: u.now(),
	}

	created, err := u.products.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

func (u *ProductUsecase) List(ctx context.Context) ([]*domain.Product, error) {
	return u.products.List(ctx)
}

// Update looks the product up first so a missing ID surfaces as
// ErrProductNotFound before anything is written, then applies the merge.
// Any authenticated user may update any product; ownership is not checked.
func (u *ProductUsecase) Update(ctx context.Context, id string, patch repository.ProductPatch) error {
	if _, err := u.products.GetByID(ctx, id); err != nil {
		return err
	}
	return u.products.Update(ctx, id, patch)
}

func (u *ProductUsecase) Delete(ctx context.Context, id string) error {
	if _, err := u.products.GetByID(ctx, id); err != nil {
		return err
	}
	return u.products.Delete(ctx, id)
}
