package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dsheridan/abate/pkg/models"
)

// MeasurementRepository defines the interface for measurement record
// operations. Records carry upload metadata and load status only; parsed
// series and analysis results are never persisted.
type MeasurementRepository interface {
	Create(ctx context.Context, m *models.Measurement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Measurement, error)
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*models.Measurement, error)
	MarkLoaded(ctx context.Context, id uuid.UUID, sampleCount int, freqMin, freqMax float64) error
	MarkFailed(ctx context.Context, id uuid.UUID, errorMsg string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
