package catalog

import (
	"context"

	"chasqui/internal/domain"
)

type Service interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetProducts(ctx context.Context, categoryID *uint) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uint) (*domain.Product, error)
}
