package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCategories(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Category), args.Error(1)
}

func TestService_GetCategories(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		expected := []Category{{Key: 1, Name: "Fruits", Picture: "fruits.jpg"}}
		repo.On("GetCategories", mock.Anything).Return(expected, nil)

		categories, err := svc.GetCategories(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, expected, categories)
		repo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetCategories", mock.Anything).Return(nil, errors.New("db error"))

		_, err := svc.GetCategories(context.Background())
		assert.Error(t, err)
	})
}
