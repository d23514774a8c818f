// Package seed provides the initial catalog and demo data. Seeding is
// idempotent: rows that already exist are skipped.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"investment-panel/internal/domain"
	"investment-panel/internal/idhash"
	"investment-panel/internal/storage"
)

// Profiles returns the default risk tier catalog.
func Profiles() []*domain.RiskProfile {
	profiles := []*domain.RiskProfile{
		{
			Name:        domain.TierConservative,
			MinScore:    0,
			MaxScore:    30,
			Description: "Low risk tolerance, prioritizes safety and liquidity.",
		},
		{
			Name:        domain.TierModerate,
			MinScore:    31,
			MaxScore:    70,
			Description: "Accepts some risk in exchange for better returns.",
		},
		{
			Name:        domain.TierAggressive,
			MinScore:    71,
			MaxScore:    100,
			Description: "High risk tolerance, seeks maximum returns.",
		},
	}
	for _, p := range profiles {
		p.ProfileID = idhash.ComputeProfileID(p.Name, p.MinScore, p.MaxScore)
	}
	return profiles
}

// Products returns the default product catalog. Risk codes come from the
// upstream catalog; codes outside {10, 20, 30} render as Unknown and are
// never matched by tier recommendations.
func Products() []*domain.Product {
	products := []*domain.Product{
		{
			Name:            "CDB",
			Type:            domain.ProductTypeCD,
			AnnualYieldRate: 0.08,
			RiskLevel:       20,
			Liquidity:       "daily",
			Taxation:        "regressive income tax",
			Guarantee:       "deposit insurance (FGC)",
			Description:     "Bank-issued fixed income certificate for conservative holdings.",
		},
		{
			// LCI is a bank certificate: taxed like the CDB (15% on gain).
			Name:            "LCI",
			Type:            domain.ProductTypeCD,
			AnnualYieldRate: 0.09,
			RiskLevel:       40,
			Liquidity:       "90 days",
			Taxation:        "income tax exempt",
			Guarantee:       "deposit insurance (FGC)",
			Description:     "Real estate credit note for moderate holdings.",
		},
		{
			Name:            "Equities",
			Type:            domain.ProductTypeEquity,
			AnnualYieldRate: 0.15,
			RiskLevel:       80,
			Liquidity:       "immediate (exchange hours)",
			Taxation:        "15% on capital gains",
			Guarantee:       "none",
			Description:     "Listed company shares for aggressive holdings.",
		},
		{
			Name:            "Multi-Strategy Fund",
			Type:            domain.ProductTypeMultiStrategyFund,
			AnnualYieldRate: 0.12,
			RiskLevel:       60,
			Liquidity:       "D+30",
			Taxation:        "regressive income tax",
			Guarantee:       "none",
			Description:     "Blended fixed income and equity fund for moderate to aggressive holdings.",
		},
	}
	for _, p := range products {
		p.ProductID = idhash.ComputeProductID(p.Name, p.Type)
	}
	return products
}

// Clients returns the demo client registry.
func Clients() []*domain.Client {
	clients := []*domain.Client{
		{
			Name:         "Antonio Silva",
			Email:        "antonio.silva@email.com",
			Document:     "12345678901",
			RegisteredAt: 1704067200000,
		},
		{
			Name:         "Maria Oliveira",
			Email:        "maria.oliveira@email.com",
			Document:     "98765432100",
			RegisteredAt: 1704067200000,
		},
	}
	for _, c := range clients {
		c.ClientID = idhash.ComputeClientID(c.Email, c.Document)
	}
	return clients
}

// Investments returns demo history for the seeded clients. Antonio holds a
// long CDB position; Maria entered equities and withdrew during a crisis.
func Investments() []*domain.InvestmentRecord {
	clients := Clients()
	products := Products()

	antonio := clients[0].ClientID
	maria := clients[1].ClientID
	cdb := products[0].ProductID
	equities := products[2].ProductID

	term24 := 24
	term12 := 12
	withdrawn := 350.0

	records := []*domain.InvestmentRecord{
		{
			ClientID:       antonio,
			ProductID:      cdb,
			AmountInvested: 600,
			InvestedAt:     1704067200000,
			TermMonths:     &term24,
			CreatedAt:      1704067200000,
		},
		{
			ClientID:       maria,
			ProductID:      equities,
			AmountInvested: 400,
			InvestedAt:     1704067200000,
			TermMonths:     &term12,
			CreatedAt:      1704067200000,
		},
		{
			ClientID:        maria,
			ProductID:       equities,
			AmountInvested:  0,
			InvestedAt:      1706745600000,
			Crisis:          true,
			AmountWithdrawn: &withdrawn,
			CreatedAt:       1706745600000,
		},
	}
	for _, r := range records {
		r.InvestmentID = idhash.ComputeInvestmentID(
			r.ClientID, r.ProductID, r.AmountInvested, r.InvestedAt, r.AmountWithdrawn != nil)
	}
	return records
}

// Stores groups the storage targets for seeding.
type Stores struct {
	Clients     storage.ClientStore
	Investments storage.InvestmentStore
	Products    storage.ProductStore
	Profiles    storage.RiskProfileStore
}

// Apply inserts all seed data, skipping rows that already exist.
func Apply(ctx context.Context, s Stores, logger *log.Logger) error {
	for _, p := range Profiles() {
		if err := insertIgnoreDuplicate(s.Profiles.Insert(ctx, p)); err != nil {
			return fmt.Errorf("seed risk profile %s: %w", p.Name, err)
		}
	}
	for _, p := range Products() {
		if err := insertIgnoreDuplicate(s.Products.Insert(ctx, p)); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}
	for _, c := range Clients() {
		if err := insertIgnoreDuplicate(s.Clients.Insert(ctx, c)); err != nil {
			return fmt.Errorf("seed client %s: %w", c.Name, err)
		}
	}
	for _, r := range Investments() {
		if err := insertIgnoreDuplicate(s.Investments.Insert(ctx, r)); err != nil {
			return fmt.Errorf("seed investment %s: %w", r.InvestmentID, err)
		}
	}

	if logger != nil {
		logger.Printf("seeded %d profiles, %d products, %d clients, %d investment records",
			len(Profiles()), len(Products()), len(Clients()), len(Investments()))
	}
	return nil
}

func insertIgnoreDuplicate(err error) error {
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil
	}
	return err
}
