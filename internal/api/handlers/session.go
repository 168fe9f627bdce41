package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dsheridan/abate/internal/parse"
	"github.com/dsheridan/abate/internal/session"
	"github.com/dsheridan/abate/pkg/models"
)

// SessionHandler handles session-related HTTP requests.
type SessionHandler struct {
	sessions *session.Manager
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// CreateSession starts a new analysis session. An initial band may be given;
// it goes through the same validated setter as any other range entry.
func (h *SessionHandler) CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*models.CreateSessionResponse, error) {
	s := h.sessions.Create()
	if req.Body.Start > 0 || req.Body.End > 0 {
		s.SetRange(req.Body.Start, req.Body.End)
	}
	log.Info().Str("sessionID", s.ID.String()).Msg("Session created")
	return &models.CreateSessionResponse{Body: s.Snapshot()}, nil
}

// GetSession returns a session snapshot.
func (h *SessionHandler) GetSession(ctx context.Context, req *models.GetSessionRequest) (*models.GetSessionResponse, error) {
	s, err := h.lookup(req.ID)
	if err != nil {
		return nil, err
	}
	return &models.GetSessionResponse{Body: s.Snapshot()}, nil
}

// DeleteSession drops a session and its in-memory series.
func (h *SessionHandler) DeleteSession(ctx context.Context, req *models.DeleteSessionRequest) (*models.DeleteSessionResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid session ID", err)
	}
	if !h.sessions.Delete(id) {
		return nil, huma.Error404NotFound("Session not found", nil)
	}
	log.Info().Str("sessionID", req.ID).Msg("Session deleted")
	return &models.DeleteSessionResponse{}, nil
}

// SetRange commits a direct numeric band entry. Invalid input (start >= end,
// window narrower than the minimum separation) is corrected by the same
// clamp/ordering rule the drag path uses, never rejected and never left
// invalid.
func (h *SessionHandler) SetRange(ctx context.Context, req *models.SetRangeRequest) (*models.SetRangeResponse, error) {
	s, err := h.lookup(req.ID)
	if err != nil {
		return nil, err
	}

	rng, m := s.SetRange(req.Body.Start, req.Body.End)

	resp := &models.SetRangeResponse{}
	resp.Body.Range = rng
	resp.Body.Metrics = m
	return resp, nil
}

// GetAnalysis returns the current band metrics. Metrics is an explicit null
// when either series has no samples inside the band; clients must render a
// placeholder, not zero.
func (h *SessionHandler) GetAnalysis(ctx context.Context, req *models.GetAnalysisRequest) (*models.GetAnalysisResponse, error) {
	s, err := h.lookup(req.ID)
	if err != nil {
		return nil, err
	}

	rng, m := s.Metrics()
	resp := &models.GetAnalysisResponse{}
	resp.Body.Range = rng
	resp.Body.Metrics = m
	return resp, nil
}

// GetDifference returns the after-minus-before difference curve.
func (h *SessionHandler) GetDifference(ctx context.Context, req *models.GetDifferenceRequest) (*models.GetDifferenceResponse, error) {
	s, err := h.lookup(req.ID)
	if err != nil {
		return nil, err
	}

	resp := &models.GetDifferenceResponse{}
	resp.Body.Samples = s.Difference()
	return resp, nil
}

// GetPaths returns pixel-space chart paths for the requested surface
// geometry.
func (h *SessionHandler) GetPaths(ctx context.Context, req *models.GetPathsRequest) (*models.GetPathsResponse, error) {
	s, err := h.lookup(req.ID)
	if err != nil {
		return nil, err
	}
	if req.MaxDB <= req.MinDB {
		return nil, huma.Error400BadRequest("max_db must be greater than min_db", nil)
	}

	return &models.GetPathsResponse{
		Body: s.Paths(req.Width, req.Height, req.MinDB, req.MaxDB),
	}, nil
}

// LoadDemo fills both slots with the synthetic sweep pair, the fallback for
// sessions with no measurement data.
func (h *SessionHandler) LoadDemo(ctx context.Context, req *models.LoadDemoRequest) (*models.LoadDemoResponse, error) {
	s, err := h.lookup(req.ID)
	if err != nil {
		return nil, err
	}
	s.LoadDemo()
	log.Info().Str("sessionID", req.ID).Msg("Demo data loaded")
	return &models.LoadDemoResponse{Body: s.Snapshot()}, nil
}

// UploadInline parses a raw export from the request body and installs it
// directly, bypassing object storage for small files.
func (h *SessionHandler) UploadInline(ctx context.Context, req *models.UploadInlineRequest) (*models.UploadInlineResponse, error) {
	s, err := h.lookup(req.ID)
	if err != nil {
		return nil, err
	}

	slot := models.Slot(req.Slot)
	if !slot.Valid() {
		return nil, huma.Error400BadRequest("Slot must be 'before' or 'after'", nil)
	}

	series := parse.Parse(string(req.RawBody))
	if len(series) == 0 {
		return nil, huma.Error400BadRequest("No parsable samples in export", nil)
	}

	s.SetSeries(slot, series, session.SourceUpload)
	log.Info().Str("sessionID", req.ID).Str("slot", req.Slot).Int("samples", len(series)).Msg("Inline export installed")

	resp := &models.UploadInlineResponse{}
	resp.Body.Slot = req.Slot
	resp.Body.SampleCount = len(series)
	return resp, nil
}

func (h *SessionHandler) lookup(id string) (*session.Session, error) {
	sid, err := uuid.Parse(id)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid session ID", err)
	}
	s, ok := h.sessions.Get(sid)
	if !ok {
		return nil, huma.Error404NotFound("Session not found", nil)
	}
	return s, nil
}
