package cart

import (
	"context"
	"database/sql"

	"freshkart-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	UpsertItem(ctx context.Context, userKey uint, item Item) error
	UpdateQuantity(ctx context.Context, userKey uint, ref ItemRef, noOfItems int) error
	Remove(ctx context.Context, userKey uint, refs []ItemRef) error
	Move(ctx context.Context, userKey uint, change Change) error
	GetItemsByUser(ctx context.Context, userKey uint) ([]CartItem, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// upsertQuery merges an add onto an existing composite identity instead of
// duplicating the row. The conflict target is the cart_items primary key, so
// two racing adds for the same identity serialize inside the store.
const upsertQuery = `
	INSERT INTO cart_items (user_id, product_id, variation_quantity, no_of_items)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, product_id, variation_quantity)
	DO UPDATE SET no_of_items = cart_items.no_of_items + EXCLUDED.no_of_items
`

func (r *repository) UpsertItem(ctx context.Context, userKey uint, item Item) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertItem"),
		zap.Uint("user_key", userKey),
		zap.Uint("product_key", item.ProductKey),
		zap.Int64("variation_quantity", item.VariationQuantity),
	)

	_, err := r.db.ExecContext(ctx, upsertQuery,
		userKey, item.ProductKey, item.VariationQuantity, item.NoOfItems,
	)
	if err != nil {
		log.Error("failed to upsert cart item", zap.Error(err))
		return err
	}

	return nil
}

// UpdateQuantity overwrites the quantity of an existing line.
func (r *repository) UpdateQuantity(ctx context.Context, userKey uint, ref ItemRef, noOfItems int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET no_of_items = $1
		WHERE user_id = $2 AND product_id = $3 AND variation_quantity = $4
	`, noOfItems, userKey, ref.ProductKey, ref.VariationQuantity)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// Remove deletes each named line in one transaction. Missing lines are a
// no-op: removal is idempotent.
func (r *repository) Remove(ctx context.Context, userKey uint, refs []ItemRef) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Remove"),
		zap.Uint("user_key", userKey),
		zap.Int("items", len(refs)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, ref := range refs {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM cart_items
			WHERE user_id = $1 AND product_id = $2 AND variation_quantity = $3
		`, userKey, ref.ProductKey, ref.VariationQuantity); err != nil {
			log.Error("failed to delete cart item", zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}

// Move relocates a line from Old's identity to New's in one transaction.
// When a row already exists at the new identity the quantities are merged
// through the same upsert add-to-cart uses.
func (r *repository) Move(ctx context.Context, userKey uint, change Change) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Move"),
		zap.Uint("user_key", userKey),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE user_id = $1 AND product_id = $2 AND variation_quantity = $3
	`, userKey, change.Old.ProductKey, change.Old.VariationQuantity)
	if err != nil {
		log.Error("failed to delete old cart line", zap.Error(err))
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCartItemNotFound
	}

	if _, err := tx.ExecContext(ctx, upsertQuery,
		userKey, change.New.ProductKey, change.New.VariationQuantity, change.New.NoOfItems,
	); err != nil {
		log.Error("failed to insert moved cart line", zap.Error(err))
		return err
	}

	return tx.Commit()
}

func (r *repository) GetItemsByUser(ctx context.Context, userKey uint) ([]CartItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, product_id, variation_quantity, no_of_items
		FROM cart_items
		WHERE user_id = $1
		ORDER BY product_id, variation_quantity
	`, userKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]CartItem, 0)
	for rows.Next() {
		var item CartItem
		if err := rows.Scan(
			&item.UserKey,
			&item.ProductKey,
			&item.VariationQuantity,
			&item.NoOfItems,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
