package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// SlotInfo describes one loaded measurement slot in a session snapshot.
type SlotInfo struct {
	SampleCount int     `json:"sample_count" doc:"Number of parsed samples"`
	FreqMin     float64 `json:"freq_min" doc:"Lowest sampled frequency, Hz"`
	FreqMax     float64 `json:"freq_max" doc:"Highest sampled frequency, Hz"`
	Source      string  `json:"source" enum:"upload,demo" doc:"Where the series came from"`
}

// SessionState is a consistent snapshot of a session: the committed range,
// slot summaries and the derived metrics, all taken from the same instant.
type SessionState struct {
	ID               string          `json:"id" doc:"Session ID"`
	Range            FrequencyRange  `json:"range" doc:"Current analysis band"`
	Drag             string          `json:"drag" enum:"none,dragging_start,dragging_end" doc:"Current drag state"`
	Before           *SlotInfo       `json:"before,omitempty" doc:"Before-measurement summary, if loaded"`
	After            *SlotInfo       `json:"after,omitempty" doc:"After-measurement summary, if loaded"`
	Metrics          *BandMetrics    `json:"metrics" doc:"Band metrics; null when either slot has no samples in the band"`
	DifferencePoints int             `json:"difference_points" doc:"Number of matched difference samples"`
}

// HoverReadout reports the nearest sample in each loaded series to the
// hovered pointer frequency.
type HoverReadout struct {
	Frequency float64 `json:"frequency" doc:"Pointer frequency in Hz"`
	Before    *Sample `json:"before,omitempty" doc:"Nearest before-sample"`
	After     *Sample `json:"after,omitempty" doc:"Nearest after-sample"`
}

// PointerEvent is one pointer or resize event from the rendering surface,
// delivered over the session websocket.
type PointerEvent struct {
	Type  string  `json:"type" enum:"down,move,up,leave,resize" doc:"Event kind"`
	X     float64 `json:"x" doc:"Pointer x in surface pixels"`
	Width float64 `json:"width,omitempty" doc:"Surface width in pixels, resize events only"`
}

// PointerUpdate is the state pushed back after each pointer event.
type PointerUpdate struct {
	Range   FrequencyRange `json:"range"`
	Drag    string         `json:"drag"`
	Hover   *HoverReadout  `json:"hover,omitempty"`
	Metrics *BandMetrics   `json:"metrics"`
}

// PathPoint is a pixel-space coordinate on the rendering surface.
type PathPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartPaths carries the pixel-space drawing data for one surface geometry.
type ChartPaths struct {
	Before     []PathPoint `json:"before" doc:"Before-series path"`
	After      []PathPoint `json:"after" doc:"After-series path"`
	Difference []PathPoint `json:"difference" doc:"Difference-curve path"`
	BandStartX float64     `json:"band_start_x" doc:"Start handle x in pixels"`
	BandEndX   float64     `json:"band_end_x" doc:"End handle x in pixels"`
}

// CreateSessionRequest creates a new analysis session.
type CreateSessionRequest struct {
	Body struct {
		Start float64 `json:"start,omitempty" minimum:"0" doc:"Initial band start in Hz; defaults apply when omitted"`
		End   float64 `json:"end,omitempty" minimum:"0" doc:"Initial band end in Hz; defaults apply when omitted"`
	}
}

// CreateSessionResponse returns the new session snapshot.
type CreateSessionResponse struct {
	Body SessionState
}

// GetSessionRequest requests a session snapshot.
type GetSessionRequest struct {
	ID string `path:"id" doc:"Session ID"`
}

// GetSessionResponse returns a session snapshot.
type GetSessionResponse struct {
	Body SessionState
}

// DeleteSessionRequest drops a session and its in-memory series.
type DeleteSessionRequest struct {
	ID string `path:"id" doc:"Session ID"`
}

// DeleteSessionResponse is empty; deletion has no body.
type DeleteSessionResponse struct{}

// CreateMeasurementRequest registers an export upload for a session slot and
// asks for a presigned upload URL.
type CreateMeasurementRequest struct {
	ID   string `path:"id" doc:"Session ID"`
	Body struct {
		Slot     string `json:"slot" enum:"before,after" required:"true" doc:"Measurement slot"`
		FileSize int64  `json:"file_size" minimum:"1" maximum:"10485760" required:"true" doc:"Export file size in bytes"`
		MimeType string `json:"mime_type" enum:"text/plain,text/csv,application/octet-stream" required:"true" doc:"Export MIME type"`
	}
}

// CreateMeasurementResponse returns the record ID and upload URL.
type CreateMeasurementResponse struct {
	Body struct {
		ID        string `json:"id" doc:"Measurement record ID"`
		UploadURL string `json:"upload_url" doc:"Pre-signed S3 URL for the export upload"`
		ExpiresIn int    `json:"expires_in" doc:"URL expiration time in seconds"`
	}
}

// IngestMeasurementRequest asks the service to fetch, parse and install an
// uploaded export.
type IngestMeasurementRequest struct {
	ID string `path:"id" doc:"Measurement record ID"`
}

// IngestMeasurementResponse summarizes the installed series.
type IngestMeasurementResponse struct {
	Body struct {
		Slot        string `json:"slot" doc:"Slot the series was installed into"`
		SampleCount int    `json:"sample_count" doc:"Number of parsed samples"`
	}
}

// UploadInlineRequest installs a raw export directly from the request body,
// bypassing object storage for small files.
type UploadInlineRequest struct {
	ID      string `path:"id" doc:"Session ID"`
	Slot    string `path:"slot" enum:"before,after" doc:"Measurement slot"`
	RawBody []byte `contentType:"text/plain" doc:"Raw measurement export"`
}

// UploadInlineResponse summarizes the installed series.
type UploadInlineResponse struct {
	Body struct {
		Slot        string `json:"slot" doc:"Slot the series was installed into"`
		SampleCount int    `json:"sample_count" doc:"Number of parsed samples"`
	}
}

// LoadDemoRequest fills both slots with synthetic sweeps.
type LoadDemoRequest struct {
	ID string `path:"id" doc:"Session ID"`
}

// LoadDemoResponse returns the session snapshot after loading.
type LoadDemoResponse struct {
	Body SessionState
}

// SetRangeRequest commits a numeric band entry.
type SetRangeRequest struct {
	ID   string `path:"id" doc:"Session ID"`
	Body struct {
		Start float64 `json:"start" required:"true" doc:"Band start in Hz"`
		End   float64 `json:"end" required:"true" doc:"Band end in Hz"`
	}
}

// SetRangeResponse returns the committed (possibly corrected) range.
type SetRangeResponse struct {
	Body struct {
		Range   FrequencyRange `json:"range" doc:"Committed band after ordering/separation correction"`
		Metrics *BandMetrics   `json:"metrics" doc:"Band metrics; null when no data in band"`
	}
}

// GetAnalysisRequest requests the current band metrics.
type GetAnalysisRequest struct {
	ID string `path:"id" doc:"Session ID"`
}

// GetAnalysisResponse returns the metrics, or an explicit null when either
// series has no samples inside the band.
type GetAnalysisResponse struct {
	Body struct {
		Range   FrequencyRange `json:"range" doc:"Current analysis band"`
		Metrics *BandMetrics   `json:"metrics" doc:"Band metrics; null means no data in band, not zero"`
	}
}

// GetDifferenceRequest requests the difference curve.
type GetDifferenceRequest struct {
	ID string `path:"id" doc:"Session ID"`
}

// GetDifferenceResponse returns the matched difference samples.
type GetDifferenceResponse struct {
	Body struct {
		Samples []DifferenceSample `json:"samples" doc:"After-minus-before difference curve"`
	}
}

// GetPathsRequest requests pixel-space chart paths for a surface geometry.
type GetPathsRequest struct {
	ID     string  `path:"id" doc:"Session ID"`
	Width  float64 `query:"width" minimum:"1" required:"true" doc:"Surface width in pixels"`
	Height float64 `query:"height" minimum:"1" required:"true" doc:"Surface height in pixels"`
	MinDB  float64 `query:"min_db" doc:"Bottom of the dB window"`
	MaxDB  float64 `query:"max_db" doc:"Top of the dB window"`
}

// GetPathsResponse returns drawing data for the rendering surface.
type GetPathsResponse struct {
	Body ChartPaths
}
