package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chasqui/internal/domain"
	"chasqui/internal/dto"
	apperrors "chasqui/internal/errors"
)

// Mock implementations

type mockRegistry struct {
	ResolveFunc func(ctx context.Context, phone, name string) (*domain.Customer, error)
}

func (m *mockRegistry) Resolve(ctx context.Context, phone, name string) (*domain.Customer, error) {
	return m.ResolveFunc(ctx, phone, name)
}

type mockPricer struct {
	PriceItemsFunc func(ctx context.Context, items []dto.ItemRequest) ([]domain.OrderLine, float64, error)
}

func (m *mockPricer) PriceItems(ctx context.Context, items []dto.ItemRequest) ([]domain.OrderLine, float64, error) {
	return m.PriceItemsFunc(ctx, items)
}

type mockCreator struct {
	CreateOrderFunc func(ctx context.Context, customerID uint, lines []domain.OrderLine, deliveryAddress, notes *string) (*domain.Order, error)
}

func (m *mockCreator) CreateOrder(ctx context.Context, customerID uint, lines []domain.OrderLine, deliveryAddress, notes *string) (*domain.Order, error) {
	return m.CreateOrderFunc(ctx, customerID, lines, deliveryAddress, notes)
}

// Tests

func TestPlaceOrder_TwoLineScenario(t *testing.T) {
	customer := &domain.Customer{ID: 5, Phone: "5551234", Name: "Ana"}

	registry := &mockRegistry{
		ResolveFunc: func(ctx context.Context, phone, name string) (*domain.Customer, error) {
			assert.Equal(t, "5551234", phone)
			return customer, nil
		},
	}

	pricedLines := []domain.OrderLine{
		{ProductID: 1, ProductName: "Tacos al pastor", Quantity: 2, UnitPrice: 10.00, Subtotal: 20.00},
		{ProductID: 2, ProductName: "Agua de horchata", Quantity: 3, UnitPrice: 5.50, Subtotal: 16.50},
	}

	pricer := &mockPricer{
		PriceItemsFunc: func(ctx context.Context, items []dto.ItemRequest) ([]domain.OrderLine, float64, error) {
			require.Len(t, items, 2)
			return pricedLines, 36.50, nil
		},
	}

	creator := &mockCreator{
		CreateOrderFunc: func(ctx context.Context, customerID uint, lines []domain.OrderLine, deliveryAddress, notes *string) (*domain.Order, error) {
			assert.Equal(t, uint(5), customerID)
			assert.Equal(t, pricedLines, lines)
			return &domain.Order{
				ID:         42,
				CustomerID: customerID,
				Status:     domain.OrderStatusPending,
				Total:      36.50,
				Lines:      lines,
			}, nil
		},
	}

	uc := NewPlaceOrderUseCase(registry, pricer, creator, zap.NewNop())

	order, err := uc.PlaceOrder(context.Background(), dto.PlaceOrderInput{
		Phone: "5551234",
		Items: []dto.ItemRequest{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 3},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 36.50, order.Total)
	assert.Len(t, order.Lines, 2)
	require.NotNil(t, order.Customer)
	assert.Equal(t, uint(5), order.Customer.ID)
	assert.Equal(t, "5551234", order.Customer.Phone)
}

func TestPlaceOrder_RegistryFailureAbortsEverything(t *testing.T) {
	registry := &mockRegistry{
		ResolveFunc: func(ctx context.Context, phone, name string) (*domain.Customer, error) {
			return nil, apperrors.NewStorageError("querying customer by phone", assert.AnError)
		},
	}

	pricer := &mockPricer{
		PriceItemsFunc: func(ctx context.Context, items []dto.ItemRequest) ([]domain.OrderLine, float64, error) {
			t.Fatal("pricer must not be called when customer resolution fails")
			return nil, 0, nil
		},
	}

	creator := &mockCreator{
		CreateOrderFunc: func(ctx context.Context, customerID uint, lines []domain.OrderLine, deliveryAddress, notes *string) (*domain.Order, error) {
			t.Fatal("creator must not be called when customer resolution fails")
			return nil, nil
		},
	}

	uc := NewPlaceOrderUseCase(registry, pricer, creator, zap.NewNop())

	order, err := uc.PlaceOrder(context.Background(), dto.PlaceOrderInput{Phone: "5551234"})

	assert.Nil(t, order)
	_, ok := apperrors.IsStorageError(err)
	assert.True(t, ok)
}

func TestPlaceOrder_ZeroLinesStillCreates(t *testing.T) {
	registry := &mockRegistry{
		ResolveFunc: func(ctx context.Context, phone, name string) (*domain.Customer, error) {
			return &domain.Customer{ID: 5, Phone: "5551234", Name: "Ana"}, nil
		},
	}

	pricer := &mockPricer{
		PriceItemsFunc: func(ctx context.Context, items []dto.ItemRequest) ([]domain.OrderLine, float64, error) {
			return []domain.OrderLine{}, 0, nil
		},
	}

	created := false
	creator := &mockCreator{
		CreateOrderFunc: func(ctx context.Context, customerID uint, lines []domain.OrderLine, deliveryAddress, notes *string) (*domain.Order, error) {
			created = true
			assert.Empty(t, lines)
			return &domain.Order{ID: 43, CustomerID: customerID, Status: domain.OrderStatusPending, Total: 0}, nil
		},
	}

	uc := NewPlaceOrderUseCase(registry, pricer, creator, zap.NewNop())

	order, err := uc.PlaceOrder(context.Background(), dto.PlaceOrderInput{
		Phone: "5551234",
		Items: []dto.ItemRequest{{ProductID: 99, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 0.0, order.Total)
}

func TestPlaceOrder_PricerFailurePropagates(t *testing.T) {
	registry := &mockRegistry{
		ResolveFunc: func(ctx context.Context, phone, name string) (*domain.Customer, error) {
			return &domain.Customer{ID: 5}, nil
		},
	}

	pricer := &mockPricer{
		PriceItemsFunc: func(ctx context.Context, items []dto.ItemRequest) ([]domain.OrderLine, float64, error) {
			return nil, 0, apperrors.NewTimeoutError("querying product by id", context.DeadlineExceeded)
		},
	}

	creator := &mockCreator{
		CreateOrderFunc: func(ctx context.Context, customerID uint, lines []domain.OrderLine, deliveryAddress, notes *string) (*domain.Order, error) {
			t.Fatal("creator must not be called when pricing fails")
			return nil, nil
		},
	}

	uc := NewPlaceOrderUseCase(registry, pricer, creator, zap.NewNop())

	order, err := uc.PlaceOrder(context.Background(), dto.PlaceOrderInput{
		Phone: "5551234",
		Items: []dto.ItemRequest{{ProductID: 1, Quantity: 1}},
	})

	assert.Nil(t, order)
	_, ok := apperrors.IsTimeoutError(err)
	assert.True(t, ok)
}
