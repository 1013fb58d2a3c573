package service

import (
	"context"

	"chasqui/internal/domain"
)

type Repository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListProducts(ctx context.Context, categoryID *uint) ([]domain.Product, error)
	FindProductByID(ctx context.Context, id uint) (*domain.Product, error)
}

type CatalogService struct {
	repo Repository
}

func NewService(repo Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CatalogService) GetProducts(ctx context.Context, categoryID *uint) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, categoryID)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.FindProductByID(ctx, id)
}
