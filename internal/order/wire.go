package order

import (
	"database/sql"

	catalogrepo "chasqui/internal/catalog/repository"
	"chasqui/internal/config"
	customerservice "chasqui/internal/customer/service"
	"chasqui/internal/order/controller"
	orderrepo "chasqui/internal/order/repository"
	"chasqui/internal/order/service"
	"chasqui/internal/order/usecase"

	"go.uber.org/zap"
)

func NewModule(
	db *sql.DB,
	cfg *config.Config,
	registry *customerservice.Registry,
	notifier controller.Notifier,
	logger *zap.Logger,
) *controller.OrdersController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	lineRepo := orderrepo.NewMySQLOrderLineRepository(db)
	catalogRepo := catalogrepo.NewMySQLCatalogRepository(db)

	pricer := service.NewPricingService(catalogRepo, logger)
	creator := service.NewOrderCreationService(db, orderRepo, lineRepo, logger, cfg.Order.TxTimeout)

	placeOrder := usecase.NewPlaceOrderUseCase(registry, pricer, creator, logger)
	manage := usecase.NewManageOrdersUseCase(orderRepo, orderRepo, lineRepo, logger, cfg.Order.DefaultListLimit)

	return controller.NewOrdersController(placeOrder, manage, notifier, logger)
}
