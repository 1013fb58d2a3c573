package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"chasqui/internal/domain"
	"chasqui/internal/dto"
	apperrors "chasqui/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlaceOrderUseCase interface {
	PlaceOrder(ctx context.Context, input dto.PlaceOrderInput) (*domain.Order, error)
}

type ManageOrdersUseCase interface {
	ListOrders(ctx context.Context, customerID *uint, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status string) (*domain.Order, error)
}

// Notifier recibe el pedido confirmado para avisarle al cliente por el
// canal de mensajeria. Es un consumidor del resultado, no una dependencia:
// sus fallos se registran y jamas afectan la respuesta HTTP.
type Notifier interface {
	NotifyOrderPlaced(ctx context.Context, order *domain.Order)
}

type OrdersController struct {
	placeOrder PlaceOrderUseCase
	manage     ManageOrdersUseCase
	notifier   Notifier
	logger     *zap.Logger
}

func NewOrdersController(
	placeOrder PlaceOrderUseCase,
	manage ManageOrdersUseCase,
	notifier Notifier,
	logger *zap.Logger,
) *OrdersController {
	return &OrdersController{
		placeOrder: placeOrder,
		manage:     manage,
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *OrdersController) HandlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.Phone == "" {
		c.writeValidationError(w, traceID, "phone is required", apperrors.ValidationDetail{
			Field:   "phone",
			Message: "phone must not be empty",
		})
		return
	}

	items := make([]dto.ItemRequest, len(req.Items))
	for i, item := range req.Items {
		items[i] = dto.ItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	order, err := c.placeOrder.PlaceOrder(r.Context(), dto.PlaceOrderInput{
		Phone:           req.Phone,
		Name:            req.Name,
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		c.writeError(w, logger, traceID, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.OrderResponse{
		TraceID:   traceID,
		Order:     dto.FromOrder(order),
		Timestamp: time.Now().UTC(),
	})

	if c.notifier != nil {
		// Fuera del ciclo de vida del request; el sender pone su timeout.
		go c.notifier.NotifyOrderPlaced(context.Background(), order)
	}
}

func (c *OrdersController) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var customerID *uint
	if raw := r.URL.Query().Get("customerId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			c.writeValidationError(w, traceID, "invalid customerId", apperrors.ValidationDetail{
				Field:   "customerId",
				Message: "customerId must be a positive integer",
			})
			return
		}
		id := uint(parsed)
		customerID = &id
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.writeValidationError(w, traceID, "invalid limit", apperrors.ValidationDetail{
				Field:   "limit",
				Message: "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	orders, err := c.manage.ListOrders(r.Context(), customerID, limit)
	if err != nil {
		c.writeError(w, logger, traceID, err)
		return
	}

	dtos := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, dto.FromOrder(&orders[i]))
	}

	c.writeJSON(w, http.StatusOK, dto.ListOrdersResponse{
		TraceID: traceID,
		Orders:  dtos,
	})
}

func (c *OrdersController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderIDStr := chi.URLParam(r, "orderId")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 32)
	if err != nil || orderID == 0 {
		logger.Warn("invalid orderId in path", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	order, err := c.manage.UpdateStatus(r.Context(), uint(orderID), req.Status)
	if err != nil {
		c.writeError(w, logger, traceID, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.OrderResponse{
		TraceID:   traceID,
		Order:     dto.FromOrder(order),
		Timestamp: time.Now().UTC(),
	})
}

type errorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *OrdersController) writeValidationError(w http.ResponseWriter, traceID, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, errorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrdersController) writeError(w http.ResponseWriter, logger *zap.Logger, traceID string, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{
			TraceID: traceID,
			Error:   "NOT_FOUND",
			Message: nfe.Message,
		})
		return
	}

	if _, ok := apperrors.IsTimeoutError(err); ok {
		logger.Error("order operation timed out", zap.Error(err))
		c.writeJSON(w, http.StatusGatewayTimeout, errorResponse{
			TraceID: traceID,
			Error:   "TIMEOUT",
			Message: "the storage did not respond in time",
		})
		return
	}

	logger.Error("order operation failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{
		TraceID: traceID,
		Error:   "STORAGE_ERROR",
		Message: "an unexpected error occurred",
	})
}

func (c *OrdersController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
