package domain

import "time"

type Order struct {
	ID              uint
	CustomerID      uint
	Status          string
	Total           float64
	DeliveryAddress *string
	Notes           *string
	CreatedAt       time.Time
	Lines           []OrderLine
	Customer        *CustomerRef
}

// CustomerRef es la vista reducida del cliente que viaja con los pedidos
// listados; suficiente para mostrar y contactar, nada mas.
type CustomerRef struct {
	ID    uint
	Name  string
	Phone string
}

// OrderLine freezes UnitPrice and ProductName at order-creation time.
// Catalog changes after that moment never alter a persisted line.
type OrderLine struct {
	ID          uint
	OrderID     uint
	ProductID   uint
	ProductName string
	Quantity    int
	UnitPrice   float64
	Subtotal    float64
}

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusPreparing  = "preparing"
	OrderStatusReady      = "ready"
	OrderStatusDelivering = "delivering"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

var orderStatuses = map[string]struct{}{
	OrderStatusPending:    {},
	OrderStatusConfirmed:  {},
	OrderStatusPreparing:  {},
	OrderStatusReady:      {},
	OrderStatusDelivering: {},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// ValidOrderStatus reports whether status belongs to the known lifecycle
// set. Transitions between states are unrestricted.
func ValidOrderStatus(status string) bool {
	_, ok := orderStatuses[status]
	return ok
}

// LineTotal suma los subtotales de las lineas.
func LineTotal(lines []OrderLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Subtotal
	}
	return total
}
