package recommend

import (
	"context"
	"database/sql"

	"freshkart-be/internal/logger"
	"freshkart-be/internal/product"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	RelatedByOrderHistory(ctx context.Context, productKey uint, limit int) ([]product.Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// RelatedByOrderHistory scores other products in the seed product's category
// by how many distinct buyers of the seed also ordered them, falling back to
// plain category membership when there is no order history.
func (r *repository) RelatedByOrderHistory(ctx context.Context, productKey uint, limit int) ([]product.Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "RelatedByOrderHistory"),
		zap.Uint("product_key", productKey),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.category_id, p.price, p.picture, p.variations
		FROM products p
		JOIN products seed ON seed.id = $1 AND p.category_id = seed.category_id
		LEFT JOIN orders o ON o.product_id = p.id
			AND o.user_id IN (SELECT user_id FROM orders WHERE product_id = $1)
		WHERE p.id <> $1
		GROUP BY p.id, p.name, p.category_id, p.price, p.picture, p.variations
		ORDER BY COUNT(DISTINCT o.user_id) DESC, p.id ASC
		LIMIT $2
	`, productKey, limit)
	if err != nil {
		log.Error("related products query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := make([]product.Product, 0, limit)
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(
			&p.Key,
			&p.Name,
			&p.CategoryKey,
			&p.Price,
			&p.Picture,
			pq.Array(&p.Variations),
		); err != nil {
			log.Error("related product scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
