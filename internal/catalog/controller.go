package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	apperrors "chasqui/internal/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.service.GetCategories(r.Context())
	if err != nil {
		c.writeError(w, err)
		return
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, cat := range categories {
		dtos = append(dtos, toCategoryDTO(cat))
	}

	c.writeJSON(w, http.StatusOK, CategoriesResponse{Categories: dtos})
}

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	var categoryID *uint
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			c.writeValidationError(w, "invalid categoryId", apperrors.ValidationDetail{
				Field:   "categoryId",
				Message: "categoryId must be a positive integer",
			})
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	products, err := c.service.GetProducts(r.Context(), categoryID)
	if err != nil {
		c.writeError(w, err)
		return
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}

	c.writeJSON(w, http.StatusOK, ProductsResponse{Products: dtos})
}

func (c *Controller) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "productId")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		c.writeValidationError(w, "invalid productId", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
		return
	}

	product, err := c.service.GetProduct(r.Context(), uint(parsed))
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toProductDTO(*product))
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeError(w http.ResponseWriter, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}

	if _, ok := apperrors.IsTimeoutError(err); ok {
		c.logger.Error("catalog request timed out", zap.Error(err))
		c.writeJSON(w, http.StatusGatewayTimeout, map[string]string{
			"error":   "TIMEOUT",
			"message": "the catalog did not respond in time",
		})
		return
	}

	c.logger.Error("catalog request failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "STORAGE_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
