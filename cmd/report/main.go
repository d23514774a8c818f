// Package main generates a per-client advisory report: risk assessment,
// investment history summary, simulations and recommendations, rendered
// as Markdown plus CSV extracts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"investment-panel/internal/idhash"
	"investment-panel/internal/reporting"
	"investment-panel/internal/seed"
	"investment-panel/internal/storage"
	"investment-panel/internal/storage/memory"
	"investment-panel/internal/storage/migrations"
	pgstore "investment-panel/internal/storage/postgres"
)

type reportStores struct {
	clients      storage.ClientStore
	investments  storage.InvestmentStore
	products     storage.ProductStore
	riskProfiles storage.RiskProfileStore
	simulations  storage.SimulationStore
}

func main() {
	loadEnvFile()

	clientID := flag.String("client-id", "", "Client id to report on")
	email := flag.String("email", "", "Client email (with --document, resolves the client id)")
	document := flag.String("document", "", "Client document (with --email, resolves the client id)")
	outputDir := flag.String("output-dir", "output", "Output directory for report files")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string")
	useMemory := flag.Bool("use-memory", false, "Use seeded in-memory storage instead of PostgreSQL")
	fixedTime := flag.String("fixed-time", "", "Fixed generation timestamp (RFC3339) for reproducible output")

	flag.Parse()

	logger := log.New(os.Stdout, "[report] ", log.LstdFlags|log.Lshortfile)

	id := *clientID
	if id == "" {
		if *email == "" || *document == "" {
			logger.Fatal("--client-id or both --email and --document are required")
		}
		id = idhash.ComputeClientID(*email, *document)
	}
	if !*useMemory && *postgresDSN == "" {
		logger.Fatal("--postgres-dsn is required (use --use-memory for seeded in-memory storage)")
	}

	ctx := context.Background()

	stores, cleanup, err := createStores(ctx, *postgresDSN, *useMemory, logger)
	if err != nil {
		logger.Fatalf("Failed to create stores: %v", err)
	}
	defer cleanup()

	generator := reporting.NewGenerator(
		stores.clients,
		stores.investments,
		stores.products,
		stores.riskProfiles,
		stores.simulations,
	)
	if *fixedTime != "" {
		at, err := time.Parse(time.RFC3339, *fixedTime)
		if err != nil {
			logger.Fatalf("Invalid --fixed-time: %v", err)
		}
		generator = generator.WithClock(func() time.Time { return at.UTC() })
	}

	report, err := generator.Generate(ctx, id)
	if err != nil {
		logger.Fatalf("Failed to generate report for %s: %v", id, err)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		logger.Fatalf("Failed to create output directory: %v", err)
	}

	ref := idhash.ShortRef(report.ClientID)
	files := map[string]string{
		fmt.Sprintf("report_%s.md", ref):       reporting.RenderMarkdown(report),
		fmt.Sprintf("simulations_%s.csv", ref): reporting.RenderSimulationsCSV(report),
		fmt.Sprintf("day_groups_%s.csv", ref):  reporting.RenderDayGroupsCSV(report),
	}
	for name, content := range files {
		path := filepath.Join(*outputDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			logger.Fatalf("Failed to write %s: %v", path, err)
		}
		logger.Printf("Wrote %s", path)
	}

	logger.Printf("Report for %s (%s) complete", report.ClientName, ref)
}

// createStores connects to PostgreSQL, or builds seeded in-memory stores.
func createStores(ctx context.Context, postgresDSN string, useMemory bool, logger *log.Logger) (*reportStores, func(), error) {
	if useMemory {
		stores := &reportStores{
			clients:      memory.NewClientStore(),
			investments:  memory.NewInvestmentStore(),
			products:     memory.NewProductStore(),
			riskProfiles: memory.NewRiskProfileStore(),
			simulations:  memory.NewSimulationStore(),
		}
		err := seed.Apply(ctx, seed.Stores{
			Clients:     stores.clients,
			Investments: stores.investments,
			Products:    stores.products,
			Profiles:    stores.riskProfiles,
		}, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("seed in-memory stores: %w", err)
		}
		return stores, func() {}, nil
	}

	pool, err := pgstore.NewPool(ctx, postgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("run postgres migrations: %w", err)
	}

	stores := &reportStores{
		clients:      pgstore.NewClientStore(pool),
		investments:  pgstore.NewInvestmentStore(pool),
		products:     pgstore.NewProductStore(pool),
		riskProfiles: pgstore.NewRiskProfileStore(pool),
		simulations:  pgstore.NewSimulationStore(pool),
	}
	return stores, pool.Close, nil
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
