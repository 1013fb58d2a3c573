package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"chasqui/internal/domain"
	apperrors "chasqui/internal/errors"
)

// mysqlDuplicateEntry es el codigo de violacion de indice UNIQUE.
const mysqlDuplicateEntry = 1062

type MySQLCustomerRepository struct {
	db *sql.DB
}

func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

func (r *MySQLCustomerRepository) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	query := `SELECT id, phone, name, createdAt FROM Customers WHERE phone = ?`

	var customer domain.Customer
	err := r.db.QueryRowContext(ctx, query, phone).Scan(
		&customer.ID, &customer.Phone, &customer.Name, &customer.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer with phone %s not found", phone))
	}
	if err != nil {
		return nil, apperrors.WrapStorage("querying customer by phone", err)
	}

	return &customer, nil
}

// Insert crea el cliente. Una violacion del indice UNIQUE sobre phone se
// devuelve como ConflictError para que el registry la resuelva releyendo.
func (r *MySQLCustomerRepository) Insert(ctx context.Context, phone, name string) (uint, error) {
	query := `INSERT INTO Customers (phone, name) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, phone, name)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return 0, apperrors.NewConflictError(fmt.Sprintf("customer with phone %s already exists", phone), err)
		}
		return 0, apperrors.WrapStorage("inserting customer", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, apperrors.WrapStorage("getting last insert id", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLCustomerRepository) UpdateName(ctx context.Context, id uint, name string) error {
	query := `UPDATE Customers SET name = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		return apperrors.WrapStorage("updating customer name", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.WrapStorage("getting rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("customer with id %d not found", id))
	}

	return nil
}
