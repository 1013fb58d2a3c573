package usecase

import (
	"context"
	"fmt"

	"chasqui/internal/domain"
	apperrors "chasqui/internal/errors"

	"go.uber.org/zap"
)

type OrderReader interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	List(ctx context.Context, customerID *uint, limit int) ([]domain.Order, error)
}

type OrderStatusUpdater interface {
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type OrderLineReader interface {
	ListByOrderIDs(ctx context.Context, orderIDs []uint) (map[uint][]domain.OrderLine, error)
}

type ManageOrdersUseCase struct {
	orders       OrderReader
	updater      OrderStatusUpdater
	lines        OrderLineReader
	logger       *zap.Logger
	defaultLimit int
}

func NewManageOrdersUseCase(
	orders OrderReader,
	updater OrderStatusUpdater,
	lines OrderLineReader,
	logger *zap.Logger,
	defaultLimit int,
) *ManageOrdersUseCase {
	return &ManageOrdersUseCase{
		orders:       orders,
		updater:      updater,
		lines:        lines,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
}

// ListOrders devuelve pedidos con sus lineas, del mas reciente al mas
// antiguo; limit <= 0 usa el limite por defecto.
func (uc *ManageOrdersUseCase) ListOrders(ctx context.Context, customerID *uint, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = uc.defaultLimit
	}

	orders, err := uc.orders.List(ctx, customerID, limit)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return []domain.Order{}, nil
	}

	ids := make([]uint, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	linesByOrder, err := uc.lines.ListByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		lines := linesByOrder[orders[i].ID]
		if lines == nil {
			lines = []domain.OrderLine{}
		}
		orders[i].Lines = lines
	}

	return orders, nil
}

// UpdateStatus transiciona el pedido sin restringir el estado previo; solo
// valida que la etiqueta pertenezca al conjunto conocido.
func (uc *ManageOrdersUseCase) UpdateStatus(ctx context.Context, orderID uint, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("unknown order status %q", status),
			apperrors.ValidationDetail{
				Field:   "status",
				Message: "status must be one of the known lifecycle states",
			},
		)
	}

	if err := uc.updater.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.Uint("orderId", orderID),
		zap.String("status", status),
	)

	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	linesByOrder, err := uc.lines.ListByOrderIDs(ctx, []uint{orderID})
	if err != nil {
		return nil, err
	}
	lines := linesByOrder[orderID]
	if lines == nil {
		lines = []domain.OrderLine{}
	}
	order.Lines = lines

	return order, nil
}
