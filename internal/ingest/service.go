// Package ingest fetches uploaded measurement exports, parses them and
// installs the resulting series into their session slot.
package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dsheridan/abate/internal/metrics"
	"github.com/dsheridan/abate/internal/parse"
	"github.com/dsheridan/abate/internal/repository"
	"github.com/dsheridan/abate/internal/session"
	"github.com/dsheridan/abate/internal/storage"
	"github.com/dsheridan/abate/pkg/models"
)

// ErrNoSamples is returned when an export parses to an empty series. The
// parser itself never fails; rejecting an empty result is an ingest decision
// so a bad upload does not silently clear a slot.
var ErrNoSamples = errors.New("no parsable samples in export")

// Service runs the ingest pipeline for uploaded exports.
type Service interface {
	IngestMeasurement(ctx context.Context, measurementID uuid.UUID) (*models.Measurement, error)
}

type service struct {
	store    storage.ObjectStore
	repo     repository.MeasurementRepository
	sessions *session.Manager
}

// NewService creates an ingest service.
func NewService(store storage.ObjectStore, repo repository.MeasurementRepository, sessions *session.Manager) Service {
	return &service{store: store, repo: repo, sessions: sessions}
}

// IngestMeasurement downloads the raw export for a measurement record,
// parses it and replaces the session slot's series, which triggers the full
// difference/metrics recomputation. The record is marked loaded or failed
// accordingly; on failure the returned error describes the step that broke.
func (s *service) IngestMeasurement(ctx context.Context, measurementID uuid.UUID) (*models.Measurement, error) {
	rec, err := s.repo.GetByID(ctx, measurementID)
	if err != nil {
		return nil, err
	}

	if rec.S3Key == nil {
		s.repo.MarkFailed(ctx, measurementID, "no uploaded object for measurement")
		return rec, fmt.Errorf("measurement %s has no uploaded object", measurementID)
	}

	sessionID, err := uuid.Parse(rec.SessionID)
	if err != nil {
		s.repo.MarkFailed(ctx, measurementID, "invalid session reference")
		return rec, fmt.Errorf("invalid session id on measurement %s: %w", measurementID, err)
	}
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		s.repo.MarkFailed(ctx, measurementID, "session no longer exists")
		return rec, fmt.Errorf("session %s no longer exists", sessionID)
	}

	data, err := s.store.DownloadObject(ctx, *rec.S3Key)
	if err != nil {
		s.repo.MarkFailed(ctx, measurementID, "failed to download export")
		return rec, fmt.Errorf("download export for %s: %w", measurementID, err)
	}

	series := parse.Parse(string(data))
	if len(series) == 0 {
		s.repo.MarkFailed(ctx, measurementID, ErrNoSamples.Error())
		return rec, ErrNoSamples
	}

	sess.SetSeries(models.Slot(rec.Slot), series, session.SourceUpload)

	if err := s.repo.MarkLoaded(ctx, measurementID, len(series),
		series[0].Frequency, series[len(series)-1].Frequency); err != nil {
		return rec, fmt.Errorf("mark measurement %s loaded: %w", measurementID, err)
	}

	metrics.MeasurementsIngested.WithLabelValues(rec.Slot).Inc()
	metrics.SamplesParsed.Add(float64(len(series)))

	log.Info().
		Str("measurementID", measurementID.String()).
		Str("sessionID", rec.SessionID).
		Str("slot", rec.Slot).
		Int("samples", len(series)).
		Msg("Measurement ingested")

	rec.Status = models.MeasurementLoaded
	rec.SampleCount = len(series)
	return rec, nil
}
