// Package main runs the advisory HTTP server: client registry, profile
// assessment, simulations with a websocket feed, and recommendations.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"investment-panel/internal/seed"
	"investment-panel/internal/server"
	"investment-panel/internal/storage"
	chstore "investment-panel/internal/storage/clickhouse"
	"investment-panel/internal/storage/memory"
	"investment-panel/internal/storage/migrations"
	pgstore "investment-panel/internal/storage/postgres"
	"investment-panel/internal/telemetry"
)

// serverStores holds all storage implementations.
type serverStores struct {
	clients      storage.ClientStore
	investments  storage.InvestmentStore
	products     storage.ProductStore
	riskProfiles storage.RiskProfileStore
	simulations  storage.SimulationStore
	telemetry    storage.TelemetryStore
}

func main() {
	// Load .env file if exists
	loadEnvFile()

	// Parse flags (env vars as defaults)
	httpAddr := flag.String("http-addr", envOr("HTTP_ADDR", ":8080"), "HTTP listen address")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("CLICKHOUSE_DSN"), "ClickHouse connection string")
	useMemory := flag.Bool("use-memory", false, "Use in-memory storage instead of PostgreSQL and ClickHouse")
	applySeed := flag.Bool("seed", false, "Apply the default catalog and demo data on startup")

	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	if !*useMemory && *postgresDSN == "" {
		logger.Fatal("--postgres-dsn is required (use --use-memory for in-memory storage)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stores, cleanup, err := createStores(ctx, *postgresDSN, *clickhouseDSN, *useMemory, logger)
	if err != nil {
		logger.Fatalf("Failed to create stores: %v", err)
	}
	defer cleanup()

	if *applySeed {
		err := seed.Apply(ctx, seed.Stores{
			Clients:     stores.clients,
			Investments: stores.investments,
			Products:    stores.products,
			Profiles:    stores.riskProfiles,
		}, logger)
		if err != nil {
			logger.Fatalf("Failed to seed: %v", err)
		}
	}

	recorder := telemetry.NewRecorder(telemetry.RecorderOptions{
		Store:  stores.telemetry,
		Logger: logger,
	})

	srv := server.New(server.Options{
		Clients:      stores.clients,
		Investments:  stores.investments,
		Products:     stores.products,
		RiskProfiles: stores.riskProfiles,
		Simulations:  stores.simulations,
		Telemetry:    recorder,
		Logger:       logger,
	})

	httpServer := &http.Server{
		Addr:    *httpAddr,
		Handler: srv.Handler(),
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, initiating graceful shutdown...", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		go func() {
			// Second signal forces immediate shutdown
			sig := <-sigCh
			logger.Printf("Received second signal %v, forcing immediate shutdown", sig)
			os.Exit(1)
		}()

		srv.Close()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Printf("Shutdown error: %v", err)
		}
		cancel()
	}()

	logger.Printf("Starting HTTP server on %s", *httpAddr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("HTTP server error: %v", err)
	}

	logger.Println("Shutdown complete")
}

// createStores creates all required stores and runs migrations.
func createStores(ctx context.Context, postgresDSN, clickhouseDSN string, useMemory bool, logger *log.Logger) (*serverStores, func(), error) {
	if useMemory {
		stores := &serverStores{
			clients:      memory.NewClientStore(),
			investments:  memory.NewInvestmentStore(),
			products:     memory.NewProductStore(),
			riskProfiles: memory.NewRiskProfileStore(),
			simulations:  memory.NewSimulationStore(),
			telemetry:    memory.NewTelemetryStore(),
		}
		return stores, func() {}, nil
	}

	// PostgreSQL
	pool, err := pgstore.NewPool(ctx, postgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("run postgres migrations: %w", err)
	}

	stores := &serverStores{
		clients:      pgstore.NewClientStore(pool),
		investments:  pgstore.NewInvestmentStore(pool),
		products:     pgstore.NewProductStore(pool),
		riskProfiles: pgstore.NewRiskProfileStore(pool),
		simulations:  pgstore.NewSimulationStore(pool),
	}

	// ClickHouse is optional; without it call telemetry goes unrecorded.
	var chConn *chstore.Conn
	if clickhouseDSN != "" {
		chConn, err = migrations.RunClickhouseMigrations(ctx, clickhouseDSN)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("run clickhouse migrations: %w", err)
		}
		stores.telemetry = chstore.NewTelemetryStore(chConn)
	} else {
		logger.Println("No --clickhouse-dsn given, call telemetry disabled")
	}

	cleanup := func() {
		if chConn != nil {
			chConn.Close()
		}
		pool.Close()
	}

	return stores, cleanup, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadEnvFile loads environment variables from .env file if it exists.
func loadEnvFile() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return // File doesn't exist, use system env vars
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Don't override existing env vars
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
