package catalog

import (
	"database/sql"

	"chasqui/internal/catalog/repository"
	"chasqui/internal/catalog/service"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLCatalogRepository(db)
	svc := service.NewService(repo)
	return NewController(svc, logger)
}
