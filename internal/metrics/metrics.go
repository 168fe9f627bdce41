// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MeasurementsIngested counts successfully ingested exports by slot.
	MeasurementsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "abate_measurements_ingested_total",
		Help: "Measurement exports parsed and installed into a session slot.",
	}, []string{"slot"})

	// SamplesParsed counts samples accepted by the parser during ingest.
	SamplesParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "abate_samples_parsed_total",
		Help: "Samples accepted by the measurement parser.",
	})

	// AnalysesComputed counts band-metric recomputations.
	AnalysesComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "abate_analyses_computed_total",
		Help: "Full difference/metrics recomputations.",
	})

	// PointerEvents counts websocket pointer events by type.
	PointerEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "abate_pointer_events_total",
		Help: "Pointer events received over session websockets.",
	}, []string{"type"})
)
