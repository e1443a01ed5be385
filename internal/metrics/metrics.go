// Package metrics exposes Prometheus instrumentation for builds,
// playback cursor moves and live sessions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/playback"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/session"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

const namespace = "algoviz"

// Build outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics owns one set of collectors registered on a single registry.
type Metrics struct {
	gatherer prometheus.Gatherer

	builds        *prometheus.CounterVec
	buildDuration *prometheus.HistogramVec
	records       *prometheus.HistogramVec
	droppedEdges  prometheus.Counter
	cursorMoves   *prometheus.CounterVec
	sessions      prometheus.Gauge
}

// New registers the collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		builds: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Log builds by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		buildDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Time to validate input and generate a log.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"algorithm"}),
		records: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "log_records",
			Help:      "Records per generated log.",
			Buckets:   prometheus.LinearBuckets(10, 20, 8),
		}, []string{"algorithm"}),
		droppedEdges: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_edges_total",
			Help:      "Authored edges dropped as invalid.",
		}),
		cursorMoves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cursor_moves_total",
			Help:      "Playback cursor changes by log algorithm.",
		}, []string{"algorithm"}),
		sessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Live sessions.",
		}),
	}
}

// ObserveBuild records one session build. It has the session.WithOnBuild
// signature.
func (m *Metrics) ObserveBuild(r session.BuildReport) {
	alg := string(r.Algorithm)
	if alg == "" {
		alg = "unknown"
	}
	outcome := OutcomeOK
	switch {
	case session.IsValidation(r.Err):
		outcome = OutcomeInvalid
	case r.Err != nil:
		outcome = OutcomeError
	}
	m.builds.WithLabelValues(alg, outcome).Inc()
	m.droppedEdges.Add(float64(r.Dropped))
	if r.Err != nil {
		return
	}
	m.buildDuration.WithLabelValues(alg).Observe(r.Duration.Seconds())
	m.records.WithLabelValues(alg).Observe(float64(r.Records))
}

// Observer returns a playback observer counting cursor moves for the log
// currently installed in ctrl.
func (m *Metrics) Observer(ctrl *playback.Controller) playback.ObserverFunc {
	return func(int, step.Record) {
		alg := "none"
		if l := ctrl.Log(); l != nil {
			alg = l.Algorithm()
		}
		m.cursorMoves.WithLabelValues(alg).Inc()
	}
}

// SessionOpened and SessionClosed track the live session gauge.
func (m *Metrics) SessionOpened() { m.sessions.Inc() }

func (m *Metrics) SessionClosed() { m.sessions.Dec() }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
