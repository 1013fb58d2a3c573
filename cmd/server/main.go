package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chasqui/internal/catalog"
	"chasqui/internal/commons"
	"chasqui/internal/config"
	"chasqui/internal/customer"
	"chasqui/internal/infrastructure/logger"
	"chasqui/internal/infrastructure/mysql"
	"chasqui/internal/order"
	ordercontroller "chasqui/internal/order/controller"
	"chasqui/internal/server"
	"chasqui/internal/whatsapp"

	"go.uber.org/zap"
)

func main() {
	var cfg *config.Config
	var err error
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		cfg, err = commons.LoadConfigFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	var notifier ordercontroller.Notifier
	if cfg.Twilio.AccountSID != "" {
		notifier = whatsapp.NewSender(cfg.Twilio, zapLogger)
		zapLogger.Info("whatsapp sender configured")
	} else {
		zapLogger.Warn("twilio credentials missing, order confirmations disabled")
	}

	registry := customer.NewModule(db, zapLogger, cfg.Order.TxTimeout)
	catalogCtrl := catalog.NewModule(db, zapLogger)
	ordersCtrl := order.NewModule(db, cfg, registry, notifier, zapLogger)

	router := server.NewRouter(catalogCtrl, ordersCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
