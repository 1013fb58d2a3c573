package service

import (
	"context"

	"chasqui/internal/domain"
	"chasqui/internal/dto"
	apperrors "chasqui/internal/errors"

	"go.uber.org/zap"
)

type ProductFinder interface {
	FindProductByID(ctx context.Context, id uint) (*domain.Product, error)
}

// PricingService congela precio y nombre de producto al momento de la
// resolucion. Cambios posteriores del catalogo no tocan lineas ya creadas.
type PricingService struct {
	catalog ProductFinder
	logger  *zap.Logger
}

func NewPricingService(catalog ProductFinder, logger *zap.Logger) *PricingService {
	return &PricingService{
		catalog: catalog,
		logger:  logger,
	}
}

// PriceItems resolves every requested item against the catalog and returns
// the surviving priced lines plus their total. Items with a non-positive
// quantity or an unknown product id are dropped, each with a Warn log, and
// never abort the remaining items. A storage failure while resolving does
// abort: it cannot be told apart from a missing product.
func (s *PricingService) PriceItems(ctx context.Context, items []dto.ItemRequest) ([]domain.OrderLine, float64, error) {
	lines := []domain.OrderLine{}
	total := 0.0

	for _, item := range items {
		if item.Quantity <= 0 {
			s.logger.Warn("item dropped: non-positive quantity",
				zap.Uint("productId", item.ProductID),
				zap.Int("quantity", item.Quantity),
			)
			continue
		}

		product, err := s.catalog.FindProductByID(ctx, item.ProductID)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				s.logger.Warn("item dropped: product not in catalog",
					zap.Uint("productId", item.ProductID),
				)
				continue
			}
			return nil, 0, err
		}

		subtotal := product.Price * float64(item.Quantity)
		lines = append(lines, domain.OrderLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			Subtotal:    subtotal,
		})
		total += subtotal
	}

	return lines, total, nil
}
