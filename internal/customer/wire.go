package customer

import (
	"database/sql"
	"time"

	"chasqui/internal/customer/repository"
	"chasqui/internal/customer/service"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger, opTimeout time.Duration) *service.Registry {
	repo := repository.NewMySQLCustomerRepository(db)
	return service.NewRegistry(repo, logger, opTimeout)
}
