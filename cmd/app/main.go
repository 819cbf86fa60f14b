package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ritualnet/backend/internal/auth"
	"github.com/ritualnet/backend/internal/catalog"
	"github.com/ritualnet/backend/internal/config"
	"github.com/ritualnet/backend/internal/database"
	"github.com/ritualnet/backend/internal/database/postgres"
	"github.com/ritualnet/backend/internal/handler"
	"github.com/ritualnet/backend/internal/inventory"
	"github.com/ritualnet/backend/internal/schedule"
	"github.com/ritualnet/backend/internal/server"
	"github.com/ritualnet/backend/internal/store"
	"github.com/ritualnet/backend/internal/user"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	pool, err := database.NewPool(context.Background(), cfg.GetDBConnString(), database.DefaultPoolConfig())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	handler.InitValidator()

	// Repositories
	catalogRepo := postgres.NewCatalogRepository(pool)
	premiumRepo := postgres.NewPremiumRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Services
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := catalog.NewService(catalogRepo)
	scheduleSvc := schedule.NewService(premiumRepo)
	inventorySvc := inventory.NewService(ledgerRepo, catalogSvc)
	storeSvc := store.NewService(storeRepo, catalogSvc, scheduleSvc)
	userSvc := user.NewService(userRepo, inventorySvc, issuer, cfg.AdminEmails)

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, pool, issuer, server.Services{
		Users:     userSvc,
		Store:     storeSvc,
		Inventory: inventorySvc,
		Schedule:  scheduleSvc,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server failed: %v", err)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
