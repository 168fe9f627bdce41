package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/dsheridan/abate/internal/api/handlers"
	"github.com/dsheridan/abate/internal/ingest"
	"github.com/dsheridan/abate/internal/repository"
	"github.com/dsheridan/abate/internal/session"
	"github.com/dsheridan/abate/internal/storage"
)

// RegisterRoutes sets up all API routes.
func RegisterRoutes(router *chi.Mux, api huma.API, sessions *session.Manager, repo repository.MeasurementRepository, store storage.ObjectStore, ingestSvc ingest.Service) {
	sessionHandler := handlers.NewSessionHandler(sessions)
	measurementHandler := handlers.NewMeasurementHandler(repo, store, ingestSvc, sessions)

	huma.Register(api, huma.Operation{
		OperationID: "createSession",
		Method:      http.MethodPost,
		Path:        "/api/sessions",
		Summary:     "Create an analysis session",
		Description: "Creates a new session with empty measurement slots and the default band",
		Tags:        []string{"Session"},
	}, sessionHandler.CreateSession)

	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/api/sessions/{id}",
		Summary:     "Get session snapshot",
		Description: "Returns the current range, slot summaries and band metrics",
		Tags:        []string{"Session"},
	}, sessionHandler.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "deleteSession",
		Method:      http.MethodDelete,
		Path:        "/api/sessions/{id}",
		Summary:     "Delete a session",
		Description: "Drops the session and its in-memory series",
		Tags:        []string{"Session"},
	}, sessionHandler.DeleteSession)

	huma.Register(api, huma.Operation{
		OperationID: "setRange",
		Method:      http.MethodPut,
		Path:        "/api/sessions/{id}/range",
		Summary:     "Set the analysis band",
		Description: "Commits a numeric band entry; invalid input is corrected by the ordering/separation rule",
		Tags:        []string{"Session"},
	}, sessionHandler.SetRange)

	huma.Register(api, huma.Operation{
		OperationID: "getAnalysis",
		Method:      http.MethodGet,
		Path:        "/api/sessions/{id}/analysis",
		Summary:     "Get band metrics",
		Description: "Returns average levels, delta and power reduction for the current band; metrics is null when no data falls in the band",
		Tags:        []string{"Analysis"},
	}, sessionHandler.GetAnalysis)

	huma.Register(api, huma.Operation{
		OperationID: "getDifference",
		Method:      http.MethodGet,
		Path:        "/api/sessions/{id}/difference",
		Summary:     "Get the difference curve",
		Description: "Returns the nearest-neighbor matched after-minus-before difference samples",
		Tags:        []string{"Analysis"},
	}, sessionHandler.GetDifference)

	huma.Register(api, huma.Operation{
		OperationID: "getPaths",
		Method:      http.MethodGet,
		Path:        "/api/sessions/{id}/paths",
		Summary:     "Get chart paths",
		Description: "Projects the series and difference curve into pixel space for a surface geometry",
		Tags:        []string{"Chart"},
	}, sessionHandler.GetPaths)

	huma.Register(api, huma.Operation{
		OperationID: "loadDemo",
		Method:      http.MethodPost,
		Path:        "/api/sessions/{id}/demo",
		Summary:     "Load demo data",
		Description: "Fills both slots with synthetic before/after sweeps",
		Tags:        []string{"Session"},
	}, sessionHandler.LoadDemo)

	huma.Register(api, huma.Operation{
		OperationID: "uploadInline",
		Method:      http.MethodPut,
		Path:        "/api/sessions/{id}/measurements/{slot}",
		Summary:     "Upload an export inline",
		Description: "Parses a raw export from the request body and installs it into the slot",
		Tags:        []string{"Measurement"},
	}, sessionHandler.UploadInline)

	huma.Register(api, huma.Operation{
		OperationID: "createMeasurement",
		Method:      http.MethodPost,
		Path:        "/api/sessions/{id}/measurements",
		Summary:     "Register an export upload",
		Description: "Creates a measurement record and returns a pre-signed upload URL",
		Tags:        []string{"Measurement"},
	}, measurementHandler.CreateMeasurement)

	huma.Register(api, huma.Operation{
		OperationID: "ingestMeasurement",
		Method:      http.MethodPost,
		Path:        "/api/measurements/{id}/ingest",
		Summary:     "Ingest an uploaded export",
		Description: "Downloads, parses and installs the export into its session slot",
		Tags:        []string{"Measurement"},
	}, measurementHandler.IngestMeasurement)

	// Pointer events speak websocket, outside the OpenAPI surface.
	router.Get("/api/sessions/{id}/events", handlers.PointerEvents(sessions))
}
