package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JiyaDuseja/inventory-management/internal/domain"
	"github.com/JiyaDuseja/inventory-management/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, quantity, price, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, quantity, price, created_by, created_at`

	row := r.pool.QueryRow(ctx, query,
		product.Name,
		product.Quantity,
		product.Price,
		product.CreatedBy,
		product.CreatedAt,
	)
	return scanProduct(row)
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT id, name, quantity, price, created_by, created_at
		FROM products
		ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT id, name, quantity, price, created_by, created_at
		FROM products
		WHERE id = $1`

	return scanProduct(r.pool.QueryRow(ctx, query, id))
}

// Update applies a merge: only non-nil patch fields enter the SET clause.
// An empty patch is a no-op.
func (r *ProductRepository) Update(ctx context.Context, id string, patch repository.ProductPatch) error {
	var set []string
	var args []any

	if patch.Name != nil {
		args = append(args, *patch.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Quantity != nil {
		args = append(args, *patch.Quantity)
		set = append(set, fmt.Sprintf("quantity = $%d", len(args)))
	}
	if patch.Price != nil {
		args = append(args, *patch.Price)
		set = append(set, fmt.Sprintf("price = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d`,
		strings.Join(set, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// pgx.Row and pgx.Rows both implement this.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Quantity, &p.Price, &p.CreatedBy, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}
