package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	createdAt := time.Now()
	address := "Av. Siempre Viva 742"
	notes := "sin cebolla"

	order := Order{
		ID:              1,
		CustomerID:      10,
		Status:          OrderStatusPending,
		Total:           36.50,
		DeliveryAddress: &address,
		Notes:           &notes,
		CreatedAt:       createdAt,
	}

	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, uint(10), order.CustomerID)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, 36.50, order.Total)
	assert.Equal(t, &address, order.DeliveryAddress)
	assert.Equal(t, &notes, order.Notes)
	assert.Equal(t, createdAt, order.CreatedAt)
}

func TestOrder_NullableFields(t *testing.T) {
	order := Order{
		ID:         2,
		CustomerID: 10,
		Status:     OrderStatusConfirmed,
		Total:      150.00,
	}

	assert.Nil(t, order.DeliveryAddress)
	assert.Nil(t, order.Notes)
	assert.Nil(t, order.Customer)
}

func TestValidOrderStatus_KnownStates(t *testing.T) {
	for _, status := range []string{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusDelivering,
		OrderStatusDelivered,
		OrderStatusCancelled,
	} {
		assert.True(t, ValidOrderStatus(status), status)
	}
}

func TestValidOrderStatus_UnknownState(t *testing.T) {
	assert.False(t, ValidOrderStatus("shipped"))
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("PENDING"))
}

func TestLineTotal(t *testing.T) {
	lines := []OrderLine{
		{ProductID: 1, Quantity: 2, UnitPrice: 10.00, Subtotal: 20.00},
		{ProductID: 2, Quantity: 3, UnitPrice: 5.50, Subtotal: 16.50},
	}

	assert.Equal(t, 36.50, LineTotal(lines))
}

func TestLineTotal_Empty(t *testing.T) {
	assert.Equal(t, 0.0, LineTotal(nil))
	assert.Equal(t, 0.0, LineTotal([]OrderLine{}))
}
