package domain

// Client represents a registered advisory client.
// Corresponds to clients table in PostgreSQL.
type Client struct {
	ClientID     string // PRIMARY KEY, deterministic hash
	Name         string
	Email        string
	Document     string // national registry number, free text
	RegisteredAt int64  // Unix timestamp in milliseconds
}
