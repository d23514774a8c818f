// Package main applies the default catalog and demo data to PostgreSQL.
// Safe to run repeatedly: rows that already exist are skipped.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"investment-panel/internal/seed"
	"investment-panel/internal/storage/migrations"
	pgstore "investment-panel/internal/storage/postgres"
)

func main() {
	loadEnvFile()

	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string")
	flag.Parse()

	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.Lshortfile)

	if *postgresDSN == "" {
		logger.Fatal("--postgres-dsn is required")
	}

	ctx := context.Background()

	pool, err := pgstore.NewPool(ctx, *postgresDSN)
	if err != nil {
		logger.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	err = seed.Apply(ctx, seed.Stores{
		Clients:     pgstore.NewClientStore(pool),
		Investments: pgstore.NewInvestmentStore(pool),
		Products:    pgstore.NewProductStore(pool),
		Profiles:    pgstore.NewRiskProfileStore(pool),
	}, logger)
	if err != nil {
		logger.Fatalf("Failed to seed: %v", err)
	}

	logger.Println("Seed complete")
}

// loadEnvFile loads environment variables from .env file if it exists.
func loadEnvFile() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return
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

		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
