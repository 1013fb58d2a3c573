package repository

import (
	"context"
	"database/sql"
	"fmt"

	"chasqui/internal/domain"
	"chasqui/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Insert escribe solo el encabezado; las lineas van por separado dentro de
// la misma transaccion.
func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error) {
	query := `
		INSERT INTO Orders (customerId, status, total, deliveryAddress, notes)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		order.CustomerID, order.Status, order.Total, order.DeliveryAddress, order.Notes,
	)
	if err != nil {
		return 0, errors.WrapStorage("inserting order", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, errors.WrapStorage("getting last insert id", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `
		SELECT o.id, o.customerId, o.status, o.total, o.deliveryAddress,
		       o.notes, o.createdAt, c.id, c.name, c.phone
		FROM Orders o
		JOIN Customers c ON c.id = o.customerId
		WHERE o.id = ?
	`

	var order domain.Order
	var ref domain.CustomerRef
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.CustomerID, &order.Status, &order.Total,
		&order.DeliveryAddress, &order.Notes, &order.CreatedAt,
		&ref.ID, &ref.Name, &ref.Phone,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, errors.WrapStorage("querying order by id", err)
	}

	order.Customer = &ref
	return &order, nil
}

// List devuelve encabezados del mas reciente al mas antiguo; con customerID
// filtra a un solo cliente.
func (r *MySQLOrderRepository) List(ctx context.Context, customerID *uint, limit int) ([]domain.Order, error) {
	query := `
		SELECT o.id, o.customerId, o.status, o.total, o.deliveryAddress,
		       o.notes, o.createdAt, c.id, c.name, c.phone
		FROM Orders o
		JOIN Customers c ON c.id = o.customerId
	`
	args := []interface{}{}
	if customerID != nil {
		query += ` WHERE o.customerId = ?`
		args = append(args, *customerID)
	}
	query += ` ORDER BY o.createdAt DESC, o.id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.WrapStorage("querying orders", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var ref domain.CustomerRef
		err := rows.Scan(
			&order.ID, &order.CustomerID, &order.Status, &order.Total,
			&order.DeliveryAddress, &order.Notes, &order.CreatedAt,
			&ref.ID, &ref.Name, &ref.Phone,
		)
		if err != nil {
			return nil, errors.WrapStorage("scanning order row", err)
		}
		order.Customer = &ref
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.WrapStorage("iterating order rows", err)
	}

	return orders, nil
}

// UpdateStatus aplica la transicion sin validar el estado previo.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	query := `UPDATE Orders SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return errors.WrapStorage("updating order status", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.WrapStorage("getting rows affected", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}
