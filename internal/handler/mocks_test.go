package handler

import (
	"context"

	"freshkart-be/internal/cart"
	"freshkart-be/internal/category"
	"freshkart-be/internal/order"
	"freshkart-be/internal/payment"
	"freshkart-be/internal/product"
	"freshkart-be/internal/user"

	"github.com/stretchr/testify/mock"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) IsRegistered(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserService) Register(ctx context.Context, username, email, password string) (user.User, error) {
	args := m.Called(ctx, username, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (string, user.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *mockUserService) GetUserForLogin(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserService) GetUserByKey(ctx context.Context, key uint) (*user.Profile, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Profile), args.Error(1)
}

type mockCartService struct {
	mock.Mock
}

func (m *mockCartService) AddToCart(ctx context.Context, item cart.Item, userKey uint) error {
	return m.Called(ctx, item, userKey).Error(0)
}

func (m *mockCartService) RemoveFromCart(ctx context.Context, refs []cart.ItemRef, userKey uint) error {
	return m.Called(ctx, refs, userKey).Error(0)
}

func (m *mockCartService) ChangeNoOfProductInCart(ctx context.Context, change cart.Change, userKey uint) error {
	return m.Called(ctx, change, userKey).Error(0)
}

func (m *mockCartService) GetCartItems(ctx context.Context, userKey uint) ([]cart.CartItem, error) {
	args := m.Called(ctx, userKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.CartItem), args.Error(1)
}

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) PlaceOrder(ctx context.Context, batch order.Batch, userKey uint) order.PlaceResult {
	args := m.Called(ctx, batch, userKey)
	return args.Get(0).(order.PlaceResult)
}

func (m *mockOrderService) GetOrdersOfUser(ctx context.Context, userKey uint) ([]order.Order, error) {
	args := m.Called(ctx, userKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *mockOrderService) AdvanceDeliveryStage(ctx context.Context, orderKey uint, stage string) error {
	return m.Called(ctx, orderKey, stage).Error(0)
}

type mockProductService struct {
	mock.Mock
}

func (m *mockProductService) SearchProductsByName(ctx context.Context, term string) ([]product.Product, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *mockProductService) GetProductsFromKey(ctx context.Context, sel product.Selector) ([]product.Product, error) {
	args := m.Called(ctx, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) GetCategories(ctx context.Context) ([]category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.Category), args.Error(1)
}

type mockRecommendService struct {
	mock.Mock
}

func (m *mockRecommendService) RelatedToProduct(ctx context.Context, productKey uint) ([]product.Product, error) {
	args := m.Called(ctx, productKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *mockRecommendService) RelatedToName(ctx context.Context, name string) ([]product.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Capture(ctx context.Context, params payment.CaptureParams) (*payment.CaptureResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.CaptureResult), args.Error(1)
}
