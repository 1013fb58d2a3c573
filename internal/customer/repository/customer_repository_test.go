package repository

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	customerservice "chasqui/internal/customer/service"
	apperrors "chasqui/internal/errors"
	"chasqui/internal/testutil"
)

// Unit Tests

func TestNewMySQLCustomerRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLCustomerRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestCustomerRepository_InsertAndFindByPhone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)

	id, err := repo.Insert(context.Background(), "5551234", "Ana")
	require.NoError(t, err)
	assert.Greater(t, id, uint(0))

	customer, err := repo.FindByPhone(context.Background(), "5551234")
	require.NoError(t, err)
	assert.Equal(t, id, customer.ID)
	assert.Equal(t, "5551234", customer.Phone)
	assert.Equal(t, "Ana", customer.Name)
	assert.False(t, customer.CreatedAt.IsZero())
}

func TestCustomerRepository_FindByPhone_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)

	customer, err := repo.FindByPhone(context.Background(), "0000000")
	assert.Nil(t, customer)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestCustomerRepository_Insert_DuplicatePhone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)

	_, err := repo.Insert(context.Background(), "5551234", "Ana")
	require.NoError(t, err)

	_, err = repo.Insert(context.Background(), "5551234", "Otra")
	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok, "duplicate phone must surface as ConflictError, got %v", err)
}

func TestCustomerRepository_UpdateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)

	id, err := repo.Insert(context.Background(), "5551234", "Ana")
	require.NoError(t, err)

	err = repo.UpdateName(context.Background(), id, "Ana Maria")
	require.NoError(t, err)

	customer, err := repo.FindByPhone(context.Background(), "5551234")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", customer.Name)
}

func TestCustomerRepository_UpdateName_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)

	err := repo.UpdateName(context.Background(), 9999, "Nadie")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

// N llamadas concurrentes para un telefono nuevo deben dejar exactamente
// un registro; las perdedoras recuperan el existente via la releidura.
func TestRegistry_ConcurrentResolve_SingleCustomer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	registry := customerservice.NewRegistry(
		NewMySQLCustomerRepository(db),
		zap.NewNop(),
		5*time.Second,
	)

	const callers = 8
	var wg sync.WaitGroup
	ids := make([]uint, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			customer, err := registry.Resolve(context.Background(), "5559999", "Ana")
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = customer.ID
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i], "caller %d", i)
	}

	first := ids[0]
	for _, id := range ids {
		assert.Equal(t, first, id, "all callers must resolve to the same customer")
	}

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM Customers WHERE phone = '5559999'`).Scan(&count))
	assert.Equal(t, 1, count)
}
