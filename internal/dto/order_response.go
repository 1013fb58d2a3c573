package dto

import (
	"time"

	"chasqui/internal/domain"
)

type OrderResponse struct {
	TraceID   string    `json:"traceId"`
	Order     OrderDTO  `json:"order"`
	Timestamp time.Time `json:"timestamp"`
}

type ListOrdersResponse struct {
	TraceID string     `json:"traceId"`
	Orders  []OrderDTO `json:"orders"`
}

type OrderDTO struct {
	ID              uint           `json:"id"`
	Status          string         `json:"status"`
	Total           float64        `json:"total"`
	DeliveryAddress *string        `json:"deliveryAddress,omitempty"`
	Notes           *string        `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	Customer        *CustomerDTO   `json:"customer,omitempty"`
	Lines           []OrderLineDTO `json:"lines"`
}

type CustomerDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type OrderLineDTO struct {
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

func FromOrder(order *domain.Order) OrderDTO {
	out := OrderDTO{
		ID:              order.ID,
		Status:          order.Status,
		Total:           order.Total,
		DeliveryAddress: order.DeliveryAddress,
		Notes:           order.Notes,
		CreatedAt:       order.CreatedAt,
		Lines:           make([]OrderLineDTO, 0, len(order.Lines)),
	}

	if order.Customer != nil {
		out.Customer = &CustomerDTO{
			ID:    order.Customer.ID,
			Name:  order.Customer.Name,
			Phone: order.Customer.Phone,
		}
	}

	for _, line := range order.Lines {
		out.Lines = append(out.Lines, OrderLineDTO{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}

	return out
}
