package recommend

import (
	"context"

	"freshkart-be/internal/product"
)

const defaultLimit = 10

// Service scores related products. Unknown keys and names yield empty
// slices, never errors.
type Service interface {
	RelatedToProduct(ctx context.Context, productKey uint) ([]product.Product, error)
	RelatedToName(ctx context.Context, name string) ([]product.Product, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) RelatedToProduct(ctx context.Context, productKey uint) ([]product.Product, error) {
	seed, err := s.productRepo.GetByKey(ctx, productKey)
	if err != nil {
		return nil, err
	}
	if len(seed) == 0 {
		return []product.Product{}, nil
	}

	return s.repo.RelatedByOrderHistory(ctx, productKey, defaultLimit)
}

func (s *service) RelatedToName(ctx context.Context, name string) ([]product.Product, error) {
	seed, err := s.productRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		return []product.Product{}, nil
	}

	return s.repo.RelatedByOrderHistory(ctx, seed.Key, defaultLimit)
}
