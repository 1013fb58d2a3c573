package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"chasqui/internal/domain"
	"chasqui/internal/errors"
)

type MySQLOrderLineRepository struct {
	db *sql.DB
}

func NewMySQLOrderLineRepository(db *sql.DB) *MySQLOrderLineRepository {
	return &MySQLOrderLineRepository{db: db}
}

func (r *MySQLOrderLineRepository) Insert(ctx context.Context, tx *sql.Tx, line domain.OrderLine) (uint, error) {
	query := `
		INSERT INTO OrderLines (orderId, productId, productName, quantity, unitPrice, subtotal)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		line.OrderID, line.ProductID, line.ProductName,
		line.Quantity, line.UnitPrice, line.Subtotal,
	)
	if err != nil {
		return 0, errors.WrapStorage("inserting order line", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, errors.WrapStorage("getting last insert id", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderLineRepository) ListByOrderIDs(ctx context.Context, orderIDs []uint) (map[uint][]domain.OrderLine, error) {
	if len(orderIDs) == 0 {
		return map[uint][]domain.OrderLine{}, nil
	}

	placeholders := make([]string, len(orderIDs))
	args := make([]interface{}, 0, len(orderIDs))
	for i, id := range orderIDs {
		placeholders[i] = "?"
		args = append(args, id)
	}

	query := fmt.Sprintf(`
		SELECT id, orderId, productId, productName, quantity, unitPrice, subtotal
		FROM OrderLines
		WHERE orderId IN (%s)
		ORDER BY id`,
		strings.Join(placeholders, ", "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.WrapStorage("querying order lines", err)
	}
	defer rows.Close()

	lines := make(map[uint][]domain.OrderLine, len(orderIDs))
	for rows.Next() {
		var line domain.OrderLine
		err := rows.Scan(
			&line.ID, &line.OrderID, &line.ProductID, &line.ProductName,
			&line.Quantity, &line.UnitPrice, &line.Subtotal,
		)
		if err != nil {
			return nil, errors.WrapStorage("scanning order line row", err)
		}
		lines[line.OrderID] = append(lines[line.OrderID], line)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.WrapStorage("iterating order line rows", err)
	}

	return lines, nil
}
