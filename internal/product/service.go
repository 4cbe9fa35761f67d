package product

import (
	"context"
	"errors"
)

var ErrInvalidSelector = errors.New("selector type must be product or category")

// Service defines the catalog's product lookups.
type Service interface {
	SearchProductsByName(ctx context.Context, term string) ([]Product, error)
	GetProductsFromKey(ctx context.Context, sel Selector) ([]Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SearchProductsByName(ctx context.Context, term string) ([]Product, error) {
	return s.repo.SearchByName(ctx, term)
}

// GetProductsFromKey resolves a tagged selector: a product key yields a
// zero-or-one element slice, a category key yields every product under it.
func (s *service) GetProductsFromKey(ctx context.Context, sel Selector) ([]Product, error) {
	switch sel.Type {
	case SelectorProduct:
		return s.repo.GetByKey(ctx, sel.Key)
	case SelectorCategory:
		return s.repo.GetByCategory(ctx, sel.Key)
	default:
		return nil, ErrInvalidSelector
	}
}
