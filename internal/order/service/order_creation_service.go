package service

import (
	"context"
	"database/sql"
	"time"

	"chasqui/internal/domain"
	apperrors "chasqui/internal/errors"

	"go.uber.org/zap"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
}

type OrderLineRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, line domain.OrderLine) (uint, error)
}

// OrderCreationService persiste encabezado y lineas como una sola unidad.
type OrderCreationService struct {
	db        TransactionManager
	orderRepo OrderRepository
	lineRepo  OrderLineRepository
	logger    *zap.Logger
	txTimeout time.Duration
}

func NewOrderCreationService(
	db TransactionManager,
	orderRepo OrderRepository,
	lineRepo OrderLineRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *OrderCreationService {
	return &OrderCreationService{
		db:        db,
		orderRepo: orderRepo,
		lineRepo:  lineRepo,
		logger:    logger,
		txTimeout: txTimeout,
	}
}

// CreateOrder writes the pending header and all lines in one transaction:
// either everything commits or nothing is observable afterwards. The total
// is derived from the lines here, never recomputed later.
func (s *OrderCreationService) CreateOrder(
	ctx context.Context,
	customerID uint,
	lines []domain.OrderLine,
	deliveryAddress *string,
	notes *string,
) (*domain.Order, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, apperrors.WrapStorage("beginning order transaction", err)
	}
	// El rollback es inocuo despues de un commit exitoso.
	defer tx.Rollback()

	order := &domain.Order{
		CustomerID:      customerID,
		Status:          domain.OrderStatusPending,
		Total:           domain.LineTotal(lines),
		DeliveryAddress: deliveryAddress,
		Notes:           notes,
	}

	orderID, err := s.orderRepo.Insert(txCtx, tx, order)
	if err != nil {
		s.logger.Error("failed to insert order header", zap.Uint("customerId", customerID), zap.Error(err))
		return nil, err
	}

	persisted := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		line.OrderID = orderID
		lineID, err := s.lineRepo.Insert(txCtx, tx, line)
		if err != nil {
			s.logger.Error("failed to insert order line, rolling back",
				zap.Uint("orderId", orderID),
				zap.Uint("productId", line.ProductID),
				zap.Error(err),
			)
			return nil, err
		}
		line.ID = lineID
		persisted = append(persisted, line)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit order transaction", zap.Uint("orderId", orderID), zap.Error(err))
		return nil, apperrors.WrapStorage("committing order transaction", err)
	}

	s.logger.Info("order created",
		zap.Uint("orderId", orderID),
		zap.Uint("customerId", customerID),
		zap.Int("lineCount", len(persisted)),
		zap.Float64("total", order.Total),
	)

	// Releer el encabezado para devolver createdAt tal como quedo en la base.
	created, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	created.Lines = persisted

	return created, nil
}
