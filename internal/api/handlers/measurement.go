package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dsheridan/abate/internal/ingest"
	"github.com/dsheridan/abate/internal/repository"
	"github.com/dsheridan/abate/internal/session"
	"github.com/dsheridan/abate/internal/storage"
	"github.com/dsheridan/abate/pkg/models"
)

const maxExportBytes = 10 * 1024 * 1024

// MeasurementHandler handles measurement upload and ingest requests.
type MeasurementHandler struct {
	repo      repository.MeasurementRepository
	store     storage.ObjectStore
	ingestSvc ingest.Service
	sessions  *session.Manager
}

// NewMeasurementHandler creates a new measurement handler.
func NewMeasurementHandler(repo repository.MeasurementRepository, store storage.ObjectStore, ingestSvc ingest.Service, sessions *session.Manager) *MeasurementHandler {
	return &MeasurementHandler{
		repo:      repo,
		store:     store,
		ingestSvc: ingestSvc,
		sessions:  sessions,
	}
}

// CreateMeasurement registers an export upload for a session slot and
// returns a pre-signed upload URL.
func (h *MeasurementHandler) CreateMeasurement(ctx context.Context, req *models.CreateMeasurementRequest) (*models.CreateMeasurementResponse, error) {
	sessionID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid session ID", err)
	}
	if _, ok := h.sessions.Get(sessionID); !ok {
		return nil, huma.Error404NotFound("Session not found", nil)
	}

	if !models.Slot(req.Body.Slot).Valid() {
		return nil, huma.Error400BadRequest("Slot must be 'before' or 'after'", nil)
	}
	if req.Body.FileSize <= 0 {
		return nil, huma.Error400BadRequest("Export is empty.", nil)
	}
	if req.Body.FileSize > maxExportBytes {
		return nil, huma.Error400BadRequest("Export too large. Measurement exports are plain text and should be well under 10 MB.", nil)
	}

	measurementID := uuid.New()
	exportKey := fmt.Sprintf("exports/%s.txt", measurementID)

	uploadURL, err := h.store.GenerateUploadURL(ctx, exportKey, req.Body.MimeType)
	if err != nil {
		if strings.Contains(err.Error(), "invalid content type") {
			return nil, huma.Error400BadRequest("Export format not supported.", err)
		}
		return nil, huma.Error400BadRequest("Failed to prepare upload. Please try again.", err)
	}

	m := &models.Measurement{
		ID:        measurementID.String(),
		SessionID: sessionID.String(),
		Slot:      req.Body.Slot,
		Status:    models.MeasurementPending,
		S3Key:     &exportKey,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := h.repo.Create(ctx, m); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create measurement record", err)
	}

	log.Info().
		Str("measurementID", m.ID).
		Str("sessionID", m.SessionID).
		Str("slot", m.Slot).
		Msg("Measurement registered, returning upload URL")

	resp := &models.CreateMeasurementResponse{}
	resp.Body.ID = m.ID
	resp.Body.UploadURL = uploadURL
	resp.Body.ExpiresIn = int((15 * time.Minute).Seconds())
	return resp, nil
}

// IngestMeasurement fetches an uploaded export, parses it and installs the
// series into its session slot. Ingest is synchronous; parsing a text export
// is fast enough that there is nothing to poll.
func (h *MeasurementHandler) IngestMeasurement(ctx context.Context, req *models.IngestMeasurementRequest) (*models.IngestMeasurementResponse, error) {
	measurementID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid measurement ID", err)
	}

	rec, err := h.ingestSvc.IngestMeasurement(ctx, measurementID)
	if err != nil {
		if rec == nil {
			return nil, huma.Error404NotFound("Measurement not found", err)
		}
		if errors.Is(err, ingest.ErrNoSamples) {
			return nil, huma.Error422UnprocessableEntity("Export contained no parsable samples", err)
		}
		return nil, huma.Error500InternalServerError("Failed to ingest measurement", err)
	}

	resp := &models.IngestMeasurementResponse{}
	resp.Body.Slot = rec.Slot
	resp.Body.SampleCount = rec.SampleCount
	return resp, nil
}
