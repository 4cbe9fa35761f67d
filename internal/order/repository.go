package order

import (
	"context"
	"database/sql"

	"freshkart-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	PlaceOrdersTx(ctx context.Context, userKey uint, entries []Entry) error
	GetOrdersByUser(ctx context.Context, userKey uint) ([]Order, error)
	AppendDeliveryStage(ctx context.Context, orderKey uint, stage string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// PlaceOrdersTx converts cart lines into order rows in a single transaction:
// for every entry it inserts an order copying the supplied fields, then
// deletes the funding cart line by composite identity. Any failure rolls the
// whole batch back, so no partial order set and no orphaned cart deletions.
func (r *repository) PlaceOrdersTx(ctx context.Context, userKey uint, entries []Entry) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "PlaceOrdersTx"),
		zap.Uint("user_key", userKey),
		zap.Int("entries", len(entries)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO orders (
				user_id, product_id, variation_quantity, no_of_items,
				paid_price, payment_status, ordered_date,
				delivery_address, delivery_stages
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		`,
			userKey,
			e.ProductDetails.ProductKey,
			e.ProductDetails.VariationQuantity,
			e.ProductDetails.NoOfItems,
			e.PaidPrice,
			e.PaymentStatus,
			e.OrderedDate,
			e.DeliveryAddress,
			pq.Array(e.DeliveryStages),
		); err != nil {
			log.Error("failed to insert order", zap.Error(err))
			return err
		}

		// Missing cart line is fine: the order can be funded directly.
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM cart_items
			WHERE user_id = $1 AND product_id = $2 AND variation_quantity = $3
		`,
			userKey,
			e.ProductDetails.ProductKey,
			e.ProductDetails.VariationQuantity,
		); err != nil {
			log.Error("failed to remove converted cart line", zap.Error(err))
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order batch", zap.Error(err))
		return err
	}

	log.Info("order batch placed")
	return nil
}

func (r *repository) GetOrdersByUser(ctx context.Context, userKey uint) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetOrdersByUser"),
		zap.Uint("user_key", userKey),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, product_id, variation_quantity, no_of_items,
		       paid_price, payment_status, ordered_date,
		       delivery_address, delivery_stages
		FROM orders
		WHERE user_id = $1
		ORDER BY id ASC
	`, userKey)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.Key,
			&o.UserKey,
			&o.ProductKey,
			&o.VariationQuantity,
			&o.NoOfItems,
			&o.PaidPrice,
			&o.PaymentStatus,
			&o.OrderedDate,
			&o.DeliveryAddress,
			pq.Array(&o.DeliveryStages),
		); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	return orders, nil
}

// AppendDeliveryStage appends one label to the order's stage log. The log is
// append-only: nothing here can reorder or truncate it.
func (r *repository) AppendDeliveryStage(ctx context.Context, orderKey uint, stage string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET delivery_stages = array_append(delivery_stages, $1)
		WHERE id = $2
	`, stage, orderKey)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
