package domain

// CallRecord is one per-call telemetry sample recorded at the service
// boundary. Append-only analytics data; corresponds to call_records in
// ClickHouse.
type CallRecord struct {
	Service    string // endpoint name, e.g. "simulations/run"
	DurationMs int64
	Success    bool
	CalledAt   int64 // Unix timestamp in milliseconds
}
