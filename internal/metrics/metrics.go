// Package metrics holds the Prometheus instrumentation for decode
// invocations, following the same promauto-built collector-struct pattern
// as the teacher's prometheus.go (here with unlabelled Histogram, Gauge and
// Counter collectors).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DecodeMetrics holds the collectors for one Pipeline's decode operations.
type DecodeMetrics struct {
	decodeDuration    prometheus.Histogram // seconds per Decode call
	notesEmitted      prometheus.Gauge     // notes in the most recent decode
	melodiaIterations prometheus.Gauge     // melodia-trick loop iterations in the most recent decode
	decodeErrors      prometheus.Counter
}

// NewDecodeMetrics registers the collectors against reg (pass
// prometheus.DefaultRegisterer for process-wide metrics, or a fresh
// *prometheus.Registry in tests to avoid collisions).
func NewDecodeMetrics(reg prometheus.Registerer) *DecodeMetrics {
	factory := promauto.With(reg)
	return &DecodeMetrics{
		decodeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "notecore",
			Subsystem: "decoder",
			Name:      "decode_duration_seconds",
			Help:      "Wall-clock time spent in Pipeline.Decode.",
			Buckets:   prometheus.DefBuckets,
		}),
		notesEmitted: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "notecore",
			Subsystem: "decoder",
			Name:      "notes_emitted",
			Help:      "Number of notes emitted by the most recent decode.",
		}),
		melodiaIterations: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "notecore",
			Subsystem: "decoder",
			Name:      "melodia_trick_iterations",
			Help:      "Melodia-trick continuation-pass iterations in the most recent decode.",
		}),
		decodeErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "notecore",
			Subsystem: "decoder",
			Name:      "decode_errors_total",
			Help:      "Total number of failed Pipeline.Decode invocations.",
		}),
	}
}

func (m *DecodeMetrics) ObserveDecodeDuration(seconds float64) {
	if m == nil {
		return
	}
	m.decodeDuration.Observe(seconds)
}

func (m *DecodeMetrics) SetNotesEmitted(n int) {
	if m == nil {
		return
	}
	m.notesEmitted.Set(float64(n))
}

func (m *DecodeMetrics) SetMelodiaIterations(n int) {
	if m == nil {
		return
	}
	m.melodiaIterations.Set(float64(n))
}

func (m *DecodeMetrics) IncDecodeErrors() {
	if m == nil {
		return
	}
	m.decodeErrors.Inc()
}
