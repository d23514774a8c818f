// Package idhash computes deterministic entity identifiers. IDs are
// SHA256 over a pipe-joined field tuple, hex encoded; the same inputs
// always produce the same ID, so replays of the same write are detected
// as duplicates by the stores.
package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
)

// ComputeClientID computes a deterministic client_id.
// Formula: SHA256(email|document)
func ComputeClientID(email, document string) string {
	return hashFields(fmt.Sprintf("%s|%s", email, document))
}

// ComputeProductID computes a deterministic product_id.
// Formula: SHA256(name|type)
func ComputeProductID(name, productType string) string {
	return hashFields(fmt.Sprintf("%s|%s", name, productType))
}

// ComputeProfileID computes a deterministic profile_id.
// Formula: SHA256(name|min_score|max_score)
func ComputeProfileID(name string, minScore, maxScore int) string {
	return hashFields(fmt.Sprintf("%s|%d|%d", name, minScore, maxScore))
}

// ComputeInvestmentID computes a deterministic investment_id.
// Formula: SHA256(client_id|product_id|amount|invested_at|withdrawal)
// The withdrawal marker keeps a same-timestamp deposit and withdrawal
// distinct.
func ComputeInvestmentID(clientID, productID string, amount float64, investedAt int64, withdrawal bool) string {
	return hashFields(fmt.Sprintf("%s|%s|%.8f|%d|%t",
		clientID,
		productID,
		amount,
		investedAt,
		withdrawal,
	))
}

// ComputeSimulationID computes a deterministic simulation_id.
// Formula: SHA256(client_id|product_name|amount|term_months|simulated_at)
func ComputeSimulationID(clientID, productName string, amount float64, termMonths int, simulatedAt int64) string {
	return hashFields(fmt.Sprintf("%s|%s|%.8f|%d|%d",
		clientID,
		productName,
		amount,
		termMonths,
		simulatedAt,
	))
}

// ShortRef derives an 8-byte base58 reference code from a full ID, for
// human-facing simulation receipts and report rows. Empty input yields an
// empty code.
func ShortRef(id string) string {
	if id == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(id))
	return base58.Encode(sum[:8])
}

func hashFields(data string) string {
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
