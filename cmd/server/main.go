package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fishparque/internal/admin"
	"fishparque/internal/auth"
	"fishparque/internal/catalog"
	"fishparque/internal/config"
	"fishparque/internal/infrastructure/logger"
	"fishparque/internal/notification"
	"fishparque/internal/order"
	orderrepo "fishparque/internal/order/repository"
	"fishparque/internal/server"
	userrepo "fishparque/internal/user/repository"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	users := userrepo.NewJSONUserRepository(cfg.Storage.UsersPath())
	orders := orderrepo.NewJSONOrderRepository(cfg.Storage.OrdersPath(), cfg.Storage.BackupPath(), zapLogger)
	sink := notification.NewFormspreeSink(cfg.Notification.Endpoint, cfg.Notification.Timeout, zapLogger)
	products := catalog.New()

	authCtrl := auth.NewModule(users, zapLogger)
	orderCtrl := order.NewModule(orders, sink, zapLogger)
	catalogCtrl := catalog.NewController(products, zapLogger)
	adminCtrl := admin.NewController(orders, users, zapLogger)

	router := server.NewRouter(server.RouterDeps{
		Auth:     authCtrl,
		Orders:   orderCtrl,
		Catalog:  catalogCtrl,
		Admin:    adminCtrl,
		AdminKey: cfg.Admin.Key,
		Logger:   zapLogger,
	})

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
