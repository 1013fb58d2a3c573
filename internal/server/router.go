package server

import (
	"net/http"

	"chasqui/internal/catalog"
	ordercontroller "chasqui/internal/order/controller"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(
	catalogCtrl *catalog.Controller,
	ordersCtrl *ordercontroller.OrdersController,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", catalogCtrl.HandleListCategories)
		r.Get("/products", catalogCtrl.HandleListProducts)
		r.Get("/products/{productId}", catalogCtrl.HandleGetProduct)

		r.Post("/orders", ordersCtrl.HandlePlaceOrder)
		r.Get("/orders", ordersCtrl.HandleListOrders)
		r.Patch("/orders/{orderId}/status", ordersCtrl.HandleUpdateStatus)
	})

	logger.Info("router configured")

	return r
}
