package order

import (
	"context"

	"freshkart-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the order engine's operations.
type Service interface {
	PlaceOrder(ctx context.Context, batch Batch, userKey uint) PlaceResult
	GetOrdersOfUser(ctx context.Context, userKey uint) ([]Order, error)
	AdvanceDeliveryStage(ctx context.Context, orderKey uint, stage string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateEntry(e Entry) error {
	if e.ProductDetails.ProductKey == 0 || e.ProductDetails.NoOfItems <= 0 {
		return ErrInvalidQuantity
	}
	if e.DeliveryAddress == "" {
		return ErrMissingAddress
	}
	if len(e.DeliveryStages) == 0 {
		return ErrInvalidDeliveries
	}
	return nil
}

// PlaceOrder atomically converts a batch of cart entries into order rows.
// The result is structured rather than a bare boolean so the request layer
// can surface the failure message.
func (s *service) PlaceOrder(ctx context.Context, batch Batch, userKey uint) PlaceResult {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "PlaceOrder"),
		zap.Uint("user_key", userKey),
	)

	if userKey == 0 {
		return PlaceResult{OK: false, Message: ErrInvalidUserKey.Error()}
	}
	if len(batch.Orders) == 0 {
		return PlaceResult{OK: false, Message: ErrEmptyBatch.Error()}
	}
	for _, e := range batch.Orders {
		if err := validateEntry(e); err != nil {
			return PlaceResult{OK: false, Message: err.Error()}
		}
	}

	if err := s.repo.PlaceOrdersTx(ctx, userKey, batch.Orders); err != nil {
		log.Error("order placement failed", zap.Error(err))
		return PlaceResult{OK: false, Message: "failed to place order"}
	}

	log.Info("order placed", zap.Int("entries", len(batch.Orders)))
	return PlaceResult{OK: true}
}

func (s *service) GetOrdersOfUser(ctx context.Context, userKey uint) ([]Order, error) {
	if userKey == 0 {
		return nil, ErrInvalidUserKey
	}
	return s.repo.GetOrdersByUser(ctx, userKey)
}

// AdvanceDeliveryStage appends one fulfillment milestone to an order's log.
func (s *service) AdvanceDeliveryStage(ctx context.Context, orderKey uint, stage string) error {
	if stage == "" {
		return ErrInvalidDeliveries
	}
	return s.repo.AppendDeliveryStage(ctx, orderKey, stage)
}
