package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront-client/internal/catalog"
)

// MockAPI is a mock implementation of the API interface
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) GetCartContents(ctx context.Context) (Contents, error) {
	args := m.Called(ctx)
	return args.Get(0).(Contents), args.Error(1)
}

func (m *MockAPI) AddToCart(ctx context.Context, productID, quantity int, product *catalog.Product) error {
	args := m.Called(ctx, productID, quantity, product)
	return args.Error(0)
}

func (m *MockAPI) UpdateCart(ctx context.Context, key string, quantity int) error {
	args := m.Called(ctx, key, quantity)
	return args.Error(0)
}

func (m *MockAPI) RemoveFromCart(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockAPI) EmptyCart(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()
	mug := &catalog.Product{ID: 42, Title: "Mug", Price: 12.99}

	t.Run("Success - Badge reconciled to authoritative sum", func(t *testing.T) {
		mockAPI := new(MockAPI)
		svc := NewService(mockAPI)

		mockAPI.On("AddToCart", mock.Anything, 42, 2, mug).Return(nil).Once()
		mockAPI.On("GetCartContents", mock.Anything).Return(Contents{ItemCount: 2}, nil).Once()

		err := svc.Add(ctx, 42, 2, mug)

		assert.NoError(t, err)
		assert.Equal(t, 2, svc.Count())
		mockAPI.AssertExpectations(t)
	})

	t.Run("Success - Reconcile failure keeps optimistic count", func(t *testing.T) {
		mockAPI := new(MockAPI)
		svc := NewService(mockAPI)

		mockAPI.On("AddToCart", mock.Anything, 42, 3, mug).Return(nil).Once()
		mockAPI.On("GetCartContents", mock.Anything).Return(Contents{}, errors.New("network down")).Once()

		err := svc.Add(ctx, 42, 3, mug)

		assert.NoError(t, err)
		assert.Equal(t, 3, svc.Count())
		mockAPI.AssertExpectations(t)
	})

	t.Run("Error - Write failure reverts the optimistic bump", func(t *testing.T) {
		mockAPI := new(MockAPI)
		svc := NewService(mockAPI)

		var observed []int
		svc.OnChange(func(count int) { observed = append(observed, count) })

		writeErr := errors.New("storage failed")
		mockAPI.On("AddToCart", mock.Anything, 42, 2, mug).Return(writeErr).Once()

		err := svc.Add(ctx, 42, 2, mug)

		assert.Error(t, err)
		assert.Equal(t, writeErr, err)
		assert.Equal(t, 0, svc.Count())
		// the badge observer saw the bump and the revert
		assert.Equal(t, []int{2, 0}, observed)
		mockAPI.AssertExpectations(t)
	})

	t.Run("Error - Missing product id", func(t *testing.T) {
		svc := NewService(new(MockAPI))
		err := svc.Add(ctx, 0, 1, mug)
		assert.Equal(t, ErrInvalidProduct, err)
	})

	t.Run("Error - Zero quantity", func(t *testing.T) {
		svc := NewService(new(MockAPI))
		err := svc.Add(ctx, 42, 0, mug)
		assert.Equal(t, ErrInvalidQuantity, err)
	})
}

func TestService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockAPI := new(MockAPI)
		svc := NewService(mockAPI)

		mockAPI.On("UpdateCart", mock.Anything, "line-1", 5).Return(nil).Once()
		mockAPI.On("GetCartContents", mock.Anything).Return(Contents{ItemCount: 5}, nil).Once()

		err := svc.UpdateQuantity(ctx, "line-1", 5)

		assert.NoError(t, err)
		assert.Equal(t, 5, svc.Count())
		mockAPI.AssertExpectations(t)
	})

	t.Run("Success - Zero quantity passes through to removal", func(t *testing.T) {
		mockAPI := new(MockAPI)
		svc := NewService(mockAPI)

		mockAPI.On("UpdateCart", mock.Anything, "line-1", 0).Return(nil).Once()
		mockAPI.On("GetCartContents", mock.Anything).Return(Contents{}, nil).Once()

		err := svc.UpdateQuantity(ctx, "line-1", 0)

		assert.NoError(t, err)
		assert.Equal(t, 0, svc.Count())
		mockAPI.AssertExpectations(t)
	})

	t.Run("Error - Empty ref", func(t *testing.T) {
		svc := NewService(new(MockAPI))
		err := svc.UpdateQuantity(ctx, "", 1)
		assert.Equal(t, ErrInvalidItemRef, err)
	})

	t.Run("Error - Write failure surfaces", func(t *testing.T) {
		mockAPI := new(MockAPI)
		svc := NewService(mockAPI)

		writeErr := errors.New("boom")
		mockAPI.On("UpdateCart", mock.Anything, "line-1", 2).Return(writeErr).Once()

		err := svc.UpdateQuantity(ctx, "line-1", 2)

		assert.Equal(t, writeErr, err)
		mockAPI.AssertExpectations(t)
	})
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockAPI := new(MockAPI)
		svc := NewService(mockAPI)

		mockAPI.On("RemoveFromCart", mock.Anything, "42").Return(nil).Once()
		mockAPI.On("GetCartContents", mock.Anything).Return(Contents{ItemCount: 1}, nil).Once()

		err := svc.Remove(ctx, "42")

		assert.NoError(t, err)
		assert.Equal(t, 1, svc.Count())
		mockAPI.AssertExpectations(t)
	})

	t.Run("Error - Empty ref", func(t *testing.T) {
		svc := NewService(new(MockAPI))
		err := svc.Remove(ctx, "")
		assert.Equal(t, ErrInvalidItemRef, err)
	})
}

func TestService_Clear(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockAPI := new(MockAPI)
		svc := NewService(mockAPI)

		mockAPI.On("AddToCart", mock.Anything, 42, 4, (*catalog.Product)(nil)).Return(nil).Once()
		mockAPI.On("GetCartContents", mock.Anything).Return(Contents{ItemCount: 4}, nil).Once()
		mockAPI.On("EmptyCart", mock.Anything).Return(nil).Once()

		assert.NoError(t, svc.Add(ctx, 42, 4, nil))
		assert.NoError(t, svc.Clear(ctx))
		assert.Equal(t, 0, svc.Count())
		mockAPI.AssertExpectations(t)
	})

	t.Run("Error - Failure keeps count", func(t *testing.T) {
		mockAPI := new(MockAPI)
		svc := NewService(mockAPI)

		mockAPI.On("EmptyCart", mock.Anything).Return(errors.New("boom")).Once()

		err := svc.Clear(ctx)

		assert.Error(t, err)
		mockAPI.AssertExpectations(t)
	})
}

func TestService_Contents(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Corrects badge", func(t *testing.T) {
		mockAPI := new(MockAPI)
		svc := NewService(mockAPI)

		snapshot := Contents{
			Items:     []Item{{Key: "k1", ProductID: 42, Price: 12.99, Quantity: 3}},
			CartTotal: 38.97,
			ItemCount: 3,
		}
		mockAPI.On("GetCartContents", mock.Anything).Return(snapshot, nil).Once()

		got, err := svc.Contents(ctx)

		assert.NoError(t, err)
		assert.Equal(t, snapshot, got)
		assert.Equal(t, 3, svc.Count())
		mockAPI.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		mockAPI := new(MockAPI)
		svc := NewService(mockAPI)

		mockAPI.On("GetCartContents", mock.Anything).Return(Contents{}, errors.New("offline")).Once()

		_, err := svc.Contents(ctx)

		assert.Error(t, err)
		mockAPI.AssertExpectations(t)
	})
}
