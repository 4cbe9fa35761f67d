package product

import (
	"context"
	"database/sql"

	"freshkart-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	SearchByName(ctx context.Context, term string) ([]Product, error)
	GetByKey(ctx context.Context, key uint) ([]Product, error)
	GetByCategory(ctx context.Context, categoryKey uint) ([]Product, error)
	GetByName(ctx context.Context, name string) (*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, category_id, price, picture, variations`

func (r *repository) scanProducts(ctx context.Context, query string, args ...any) ([]Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "repository"))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("product query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.Key,
			&p.Name,
			&p.CategoryKey,
			&p.Price,
			&p.Picture,
			pq.Array(&p.Variations),
		); err != nil {
			log.Error("product row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("product rows iteration failed", zap.Error(err))
		return nil, err
	}

	return products, nil
}

// SearchByName matches a case-insensitive substring of the product name.
// An empty term yields an empty slice without touching the store.
func (r *repository) SearchByName(ctx context.Context, term string) ([]Product, error) {
	if term == "" {
		return []Product{}, nil
	}

	return r.scanProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE name ILIKE $1
		ORDER BY id ASC
	`, "%"+term+"%")
}

// GetByKey returns a zero-or-one element slice. Unknown keys are not an error.
func (r *repository) GetByKey(ctx context.Context, key uint) ([]Product, error) {
	return r.scanProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, key)
}

func (r *repository) GetByCategory(ctx context.Context, categoryKey uint) ([]Product, error) {
	return r.scanProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE category_id = $1
		ORDER BY id ASC
	`, categoryKey)
}

// GetByName resolves a product by exact name. Used by the recommendation
// scorer; nil when absent.
func (r *repository) GetByName(ctx context.Context, name string) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE name = $1
	`, name).Scan(
		&p.Key,
		&p.Name,
		&p.CategoryKey,
		&p.Price,
		&p.Picture,
		pq.Array(&p.Variations),
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}
