package cart

import (
	"context"
)

// Service defines the cart engine's operations.
type Service interface {
	AddToCart(ctx context.Context, item Item, userKey uint) error
	RemoveFromCart(ctx context.Context, refs []ItemRef, userKey uint) error
	ChangeNoOfProductInCart(ctx context.Context, change Change, userKey uint) error
	GetCartItems(ctx context.Context, userKey uint) ([]CartItem, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddToCart merges the requested quantity onto an existing line with the same
// composite identity, or inserts a fresh line.
func (s *service) AddToCart(ctx context.Context, item Item, userKey uint) error {
	if userKey == 0 {
		return ErrInvalidUserKey
	}
	if item.ProductKey == 0 {
		return ErrInvalidProduct
	}
	if item.NoOfItems <= 0 {
		return ErrInvalidQuantity
	}

	return s.repo.UpsertItem(ctx, userKey, item)
}

// RemoveFromCart deletes each named line. Removing a line that does not exist
// is a no-op, so a second remove still succeeds.
func (s *service) RemoveFromCart(ctx context.Context, refs []ItemRef, userKey uint) error {
	if userKey == 0 {
		return ErrInvalidUserKey
	}
	for _, ref := range refs {
		if ref.ProductKey == 0 {
			return ErrInvalidProduct
		}
	}
	if len(refs) == 0 {
		return nil
	}

	return s.repo.Remove(ctx, userKey, refs)
}

// ChangeNoOfProductInCart is a move-or-update. When old and new share an
// identity it is a pure quantity overwrite; otherwise the line is moved and
// merged onto any row already at the new identity.
func (s *service) ChangeNoOfProductInCart(ctx context.Context, change Change, userKey uint) error {
	if userKey == 0 {
		return ErrInvalidUserKey
	}
	if change.Old.ProductKey == 0 || change.New.ProductKey == 0 {
		return ErrInvalidProduct
	}
	if change.New.NoOfItems <= 0 {
		return ErrInvalidQuantity
	}

	sameIdentity := change.Old.ProductKey == change.New.ProductKey &&
		change.Old.VariationQuantity == change.New.VariationQuantity

	if sameIdentity {
		ref := ItemRef{
			ProductKey:        change.Old.ProductKey,
			VariationQuantity: change.Old.VariationQuantity,
		}
		return s.repo.UpdateQuantity(ctx, userKey, ref, change.New.NoOfItems)
	}

	return s.repo.Move(ctx, userKey, change)
}

func (s *service) GetCartItems(ctx context.Context, userKey uint) ([]CartItem, error) {
	if userKey == 0 {
		return nil, ErrInvalidUserKey
	}
	return s.repo.GetItemsByUser(ctx, userKey)
}
