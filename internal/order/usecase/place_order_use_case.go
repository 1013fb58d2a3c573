package usecase

import (
	"context"

	"chasqui/internal/domain"
	"chasqui/internal/dto"

	"go.uber.org/zap"
)

type CustomerRegistry interface {
	Resolve(ctx context.Context, phone, name string) (*domain.Customer, error)
}

type Pricer interface {
	PriceItems(ctx context.Context, items []dto.ItemRequest) ([]domain.OrderLine, float64, error)
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, customerID uint, lines []domain.OrderLine, deliveryAddress, notes *string) (*domain.Order, error)
}

// PlaceOrderUseCase orquesta resolver cliente -> cotizar -> persistir,
// estrictamente en ese orden.
type PlaceOrderUseCase struct {
	registry CustomerRegistry
	pricer   Pricer
	creator  OrderCreator
	logger   *zap.Logger
}

func NewPlaceOrderUseCase(
	registry CustomerRegistry,
	pricer Pricer,
	creator OrderCreator,
	logger *zap.Logger,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		registry: registry,
		pricer:   pricer,
		creator:  creator,
		logger:   logger,
	}
}

func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, input dto.PlaceOrderInput) (*domain.Order, error) {
	uc.logger.Info("place-order started",
		zap.String("phone", input.Phone),
		zap.Int("itemCount", len(input.Items)),
	)

	customer, err := uc.registry.Resolve(ctx, input.Phone, input.Name)
	if err != nil {
		return nil, err
	}

	lines, total, err := uc.pricer.PriceItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	// Un pedido sin lineas sobrevivientes se crea igual, con total cero.
	if len(lines) == 0 {
		uc.logger.Warn("placing order with no priced lines",
			zap.Uint("customerId", customer.ID),
			zap.Int("requestedItems", len(input.Items)),
		)
	}

	order, err := uc.creator.CreateOrder(ctx, customer.ID, lines, input.DeliveryAddress, input.Notes)
	if err != nil {
		return nil, err
	}

	if order.Customer == nil {
		order.Customer = &domain.CustomerRef{ID: customer.ID, Name: customer.Name, Phone: customer.Phone}
	}

	uc.logger.Info("place-order completed",
		zap.Uint("orderId", order.ID),
		zap.Uint("customerId", customer.ID),
		zap.Float64("total", total),
	)

	return order, nil
}
