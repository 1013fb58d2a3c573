package repository

import (
	"context"
	"database/sql"
	"fmt"

	"chasqui/internal/domain"
	"chasqui/internal/errors"
)

type MySQLCatalogRepository struct {
	db *sql.DB
}

func NewMySQLCatalogRepository(db *sql.DB) *MySQLCatalogRepository {
	return &MySQLCatalogRepository{db: db}
}

func (r *MySQLCatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name FROM Categories ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.WrapStorage("querying categories", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, errors.WrapStorage("scanning category row", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.WrapStorage("iterating category rows", err)
	}

	return categories, nil
}

// ListProducts devuelve solo productos disponibles; con categoryID filtra
// por categoria.
func (r *MySQLCatalogRepository) ListProducts(ctx context.Context, categoryID *uint) ([]domain.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.available,
		       p.categoryId, c.name
		FROM Products p
		JOIN Categories c ON c.id = p.categoryId
		WHERE p.available = 1
	`
	args := []interface{}{}
	if categoryID != nil {
		query += ` AND p.categoryId = ?`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY p.name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.WrapStorage("querying products", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Available,
			&p.CategoryID, &p.CategoryName,
		)
		if err != nil {
			return nil, errors.WrapStorage("scanning product row", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.WrapStorage("iterating product rows", err)
	}

	return products, nil
}

func (r *MySQLCatalogRepository) FindProductByID(ctx context.Context, id uint) (*domain.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.available,
		       p.categoryId, c.name
		FROM Products p
		JOIN Categories c ON c.id = p.categoryId
		WHERE p.id = ?
	`

	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Available,
		&p.CategoryID, &p.CategoryName,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, errors.WrapStorage("querying product by id", err)
	}

	return &p, nil
}
