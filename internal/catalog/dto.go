package catalog

import "chasqui/internal/domain"

type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProductDTO struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Available    bool    `json:"available"`
	CategoryID   uint    `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
}

type CategoriesResponse struct {
	Categories []CategoryDTO `json:"categories"`
}

type ProductsResponse struct {
	Products []ProductDTO `json:"products"`
}

func toCategoryDTO(c domain.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Name: c.Name}
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Available:    p.Available,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
	}
}
