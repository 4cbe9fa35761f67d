package user

import (
	"context"
	"errors"

	"freshkart-be/internal/cart"
	"freshkart-be/internal/logger"
	"freshkart-be/internal/order"

	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service interface {
	IsRegistered(ctx context.Context, email string) (bool, error)
	Register(ctx context.Context, username, email, password string) (User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetUserForLogin(ctx context.Context, email string) (*User, error)
	GetUserByKey(ctx context.Context, key uint) (*Profile, error)
}

type service struct {
	repo      Repository
	cartRepo  cart.Repository
	orderRepo order.Repository
}

func NewService(repo Repository, cartRepo cart.Repository, orderRepo order.Repository) Service {
	return &service{repo: repo, cartRepo: cartRepo, orderRepo: orderRepo}
}

// IsRegistered is a pure existence check, no side effects.
func (s *service) IsRegistered(ctx context.Context, email string) (bool, error) {
	return s.repo.EmailExists(ctx, email)
}

// Register hashes the password and creates the account. A duplicate email
// surfaces as ErrEmailExists; the existing row is left untouched.
func (s *service) Register(ctx context.Context, username, email, password string) (User, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	u, err := s.repo.Create(ctx, CreateUserParams{
		Username:       username,
		Email:          email,
		HashedPassword: hashed,
	})
	if err != nil {
		if !errors.Is(err, ErrEmailExists) {
			log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		}
		return User{}, err
	}

	log.Info("user registered",
		zap.Uint("user_key", u.Key),
		zap.String("email", email),
	)

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", User{}, err
	}
	if u == nil || !CheckPasswordHash(password, u.HashedPassword) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.Key, u.Email)
	return token, *u, err
}

// GetUserForLogin exposes the account with its hash blob so an external
// authentication step can compare credentials itself. Nil when absent.
func (s *service) GetUserForLogin(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// GetUserByKey assembles the full profile: the account plus its orders and
// cart lines. Nil when the key is unknown.
func (s *service) GetUserByKey(ctx context.Context, key uint) (*Profile, error) {
	u, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	orders, err := s.orderRepo.GetOrdersByUser(ctx, key)
	if err != nil {
		return nil, err
	}

	items, err := s.cartRepo.GetItemsByUser(ctx, key)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:      *u,
		Orders:    orders,
		CartItems: items,
	}, nil
}
