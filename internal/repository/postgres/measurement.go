package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/dsheridan/abate/internal/repository"
	"github.com/dsheridan/abate/pkg/models"
)

// MeasurementRepository implements repository.MeasurementRepository for
// PostgreSQL.
type MeasurementRepository struct {
	db *sql.DB
}

// NewMeasurementRepository creates a new PostgreSQL measurement repository.
func NewMeasurementRepository(db *sql.DB) repository.MeasurementRepository {
	return &MeasurementRepository{db: db}
}

// Create inserts a new measurement record.
func (r *MeasurementRepository) Create(ctx context.Context, m *models.Measurement) error {
	query := `
		INSERT INTO measurements (id, session_id, slot, status, s3_key, sample_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.SessionID,
		m.Slot,
		m.Status,
		m.S3Key,
		m.SampleCount,
		m.CreatedAt,
		m.UpdatedAt)

	return err
}

// GetByID retrieves a measurement record by ID.
func (r *MeasurementRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Measurement, error) {
	query := `
		SELECT id, session_id, slot, status, s3_key, sample_count, freq_min, freq_max, error_message, created_at, updated_at, loaded_at
		FROM measurements
		WHERE id = $1`

	return scanMeasurement(r.db.QueryRowContext(ctx, query, id))
}

// GetBySessionID retrieves the measurement records of a session, newest
// first.
func (r *MeasurementRepository) GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*models.Measurement, error) {
	query := `
		SELECT id, session_id, slot, status, s3_key, sample_count, freq_min, freq_max, error_message, created_at, updated_at, loaded_at
		FROM measurements
		WHERE session_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Measurement
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MarkLoaded records a successful ingest: status, sample count and the
// measured frequency span.
func (r *MeasurementRepository) MarkLoaded(ctx context.Context, id uuid.UUID, sampleCount int, freqMin, freqMax float64) error {
	query := `
		UPDATE measurements
		SET status = 'loaded', sample_count = $1, freq_min = $2, freq_max = $3,
		    error_message = NULL, updated_at = NOW(), loaded_at = NOW()
		WHERE id = $4`

	_, err := r.db.ExecContext(ctx, query, sampleCount, freqMin, freqMax, id)
	return err
}

// MarkFailed records a failed ingest with a message.
func (r *MeasurementRepository) MarkFailed(ctx context.Context, id uuid.UUID, errorMsg string) error {
	query := `
		UPDATE measurements
		SET status = 'failed', error_message = $1, updated_at = NOW()
		WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, errorMsg, id)
	return err
}

// Delete removes a measurement record.
func (r *MeasurementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM measurements WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeasurement(row rowScanner) (*models.Measurement, error) {
	var m models.Measurement
	var s3Key, errorMsg sql.NullString
	var freqMin, freqMax sql.NullFloat64
	var loadedAt sql.NullTime

	err := row.Scan(
		&m.ID,
		&m.SessionID,
		&m.Slot,
		&m.Status,
		&s3Key,
		&m.SampleCount,
		&freqMin,
		&freqMax,
		&errorMsg,
		&m.CreatedAt,
		&m.UpdatedAt,
		&loadedAt)
	if err != nil {
		return nil, err
	}

	if s3Key.Valid {
		m.S3Key = &s3Key.String
	}
	if freqMin.Valid {
		m.FreqMin = &freqMin.Float64
	}
	if freqMax.Valid {
		m.FreqMax = &freqMax.Float64
	}
	if errorMsg.Valid {
		m.ErrorMsg = &errorMsg.String
	}
	if loadedAt.Valid {
		m.LoadedAt = &loadedAt.Time
	}

	return &m, nil
}
