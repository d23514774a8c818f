package clickhouse

import (
	"context"
	"fmt"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

// TelemetryStore implements storage.TelemetryStore using ClickHouse.
// MergeTree enforces no uniqueness; call records have no key and duplicates
// are acceptable in analytics data.
type TelemetryStore struct {
	conn *Conn
}

// NewTelemetryStore creates a new TelemetryStore.
func NewTelemetryStore(conn *Conn) *TelemetryStore {
	return &TelemetryStore{conn: conn}
}

// Compile-time interface check.
var _ storage.TelemetryStore = (*TelemetryStore)(nil)

// Insert appends one call record.
func (s *TelemetryStore) Insert(ctx context.Context, rec *domain.CallRecord) error {
	query := `
		INSERT INTO call_records (service, duration_ms, success, called_at)
		VALUES (?, ?, ?, ?)
	`

	err := s.conn.Exec(ctx, query, rec.Service, rec.DurationMs, boolToUInt8(rec.Success), rec.CalledAt)
	if err != nil {
		return fmt.Errorf("insert call record: %w", err)
	}
	return nil
}

// InsertBulk appends multiple call records in one batch.
func (s *TelemetryStore) InsertBulk(ctx context.Context, recs []*domain.CallRecord) error {
	if len(recs) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO call_records (service, duration_ms, success, called_at)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, rec := range recs {
		if err := batch.Append(rec.Service, rec.DurationMs, boolToUInt8(rec.Success), rec.CalledAt); err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// GetByService retrieves all call records for a service, ordered by
// called_at ASC.
func (s *TelemetryStore) GetByService(ctx context.Context, service string) ([]*domain.CallRecord, error) {
	query := `
		SELECT service, duration_ms, success, called_at
		FROM call_records
		WHERE service = ?
		ORDER BY called_at ASC
	`

	rows, err := s.conn.Query(ctx, query, service)
	if err != nil {
		return nil, fmt.Errorf("query call records by service: %w", err)
	}
	defer rows.Close()

	var records []*domain.CallRecord
	for rows.Next() {
		var rec domain.CallRecord
		var success uint8
		if err := rows.Scan(&rec.Service, &rec.DurationMs, &success, &rec.CalledAt); err != nil {
			return nil, fmt.Errorf("scan call record row: %w", err)
		}
		rec.Success = success != 0
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate call record rows: %w", err)
	}
	return records, nil
}

func boolToUInt8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
