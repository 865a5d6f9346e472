package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/burrowlabs/whack-engine/internal/config"
	"github.com/burrowlabs/whack-engine/internal/database"
	"github.com/burrowlabs/whack-engine/internal/database/postgres"
	"github.com/burrowlabs/whack-engine/internal/gameconfig"
	"github.com/burrowlabs/whack-engine/internal/ledger"
	"github.com/burrowlabs/whack-engine/internal/player"
	"github.com/burrowlabs/whack-engine/internal/scheduler"
	"github.com/burrowlabs/whack-engine/internal/server"
	"github.com/burrowlabs/whack-engine/internal/treasury"
	"github.com/burrowlabs/whack-engine/internal/whack"
	"github.com/burrowlabs/whack-engine/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	connString := cfg.GetDBConnString()

	if err := database.RunMigrations(connString); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(connString, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Repositories
	sessionRepo := postgres.NewSessionRepository(dbPool)
	balanceRepo := postgres.NewBalanceRepository(dbPool)
	treasuryRepo := postgres.NewTreasuryRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)
	gameConfigRepo := postgres.NewGameConfigRepository(dbPool)

	// Services
	audit := ledger.NewRecorder(ledgerRepo)
	configService := gameconfig.NewService(gameConfigRepo)
	treasuryService := treasury.NewService(treasuryRepo)
	playerService := player.NewService(balanceRepo)
	whackService := whack.NewService(sessionRepo, balanceRepo, treasuryRepo, audit, configService, whack.NewSlotRoller())

	// Seed the singleton config row and the pools before serving traffic
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := configService.EnsureDefaults(startupCtx); err != nil {
		cancelStartup()
		slog.Error("Config provisioning failed", "error", err)
		os.Exit(1)
	}
	if err := treasuryService.Provision(startupCtx, cfg.PoolInitialBalance); err != nil {
		cancelStartup()
		slog.Error("Treasury provisioning failed", "error", err)
		os.Exit(1)
	}
	cancelStartup()

	// Background expiry sweeping
	var sched *scheduler.Scheduler
	var pool *worker.Pool
	if cfg.SweepEnabled {
		pool = worker.NewPool(1, 1)
		pool.Start()

		sched = scheduler.New(pool)
		sched.Schedule(cfg.SweepInterval, worker.NewSweepJob(whackService))
		slog.Info("Expiry sweeper enabled", "interval", cfg.SweepInterval)
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, whackService, playerService, treasuryService, configService, audit)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if sched != nil {
		sched.Stop()
		pool.Stop()
	}
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}
