package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for pipeline runs.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Collaborator latencies by input kind
	InputLatency *prometheus.HistogramVec

	// Stage latencies by stage name
	StageLatency *prometheus.HistogramVec

	// Runs by result (success, failure)
	Runs *prometheus.CounterVec

	// Credit decisions by outcome
	Decisions *prometheus.CounterVec

	// KYB outcomes by status
	KYBOutcomes *prometheus.CounterVec

	// Compliance findings by type
	Findings *prometheus.CounterVec

	// Cross-sell signals by type
	Signals *prometheus.CounterVec

	// Fields the extractors could not find
	ExtractionMisses *prometheus.CounterVec
}

// New creates a Metrics instance on its own registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		InputLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dossier_input_load_duration_seconds",
			Help:    "Duration of loading and converting an input document",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"kind"}), // kind: articles, financials, transactions, sanctions

		StageLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dossier_stage_duration_seconds",
			Help:    "Duration of pipeline stages",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"stage"}),

		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dossier_runs_total",
			Help: "Total pipeline runs by result",
		}, []string{"result"}),

		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dossier_credit_decisions_total",
			Help: "Total credit decisions by outcome",
		}, []string{"decision"}),

		KYBOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dossier_kyb_outcomes_total",
			Help: "Total KYB verifications by status",
		}, []string{"status"}),

		Findings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dossier_compliance_findings_total",
			Help: "Total compliance findings by type",
		}, []string{"type"}),

		Signals: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dossier_signals_total",
			Help: "Total cross-sell signals by type",
		}, []string{"signal"}),

		ExtractionMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dossier_extraction_misses_total",
			Help: "Total fields not found in supplied documents",
		}, []string{"field"}),
	}
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveInput records how long an input took to load
func (m *Metrics) ObserveInput(kind string, d time.Duration) {
	if m != nil {
		m.InputLatency.WithLabelValues(kind).Observe(d.Seconds())
	}
}

// ObserveStage records a stage duration
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m != nil {
		m.StageLatency.WithLabelValues(stage).Observe(d.Seconds())
	}
}

// IncRun records a finished run
func (m *Metrics) IncRun(result string) {
	if m != nil {
		m.Runs.WithLabelValues(result).Inc()
	}
}

// IncDecision records a credit decision
func (m *Metrics) IncDecision(decision string) {
	if m != nil {
		m.Decisions.WithLabelValues(decision).Inc()
	}
}

// IncKYB records a KYB verification outcome
func (m *Metrics) IncKYB(status string) {
	if m != nil {
		m.KYBOutcomes.WithLabelValues(status).Inc()
	}
}

// IncFinding records a compliance finding
func (m *Metrics) IncFinding(kind string) {
	if m != nil {
		m.Findings.WithLabelValues(kind).Inc()
	}
}

// IncSignal records a cross-sell signal
func (m *Metrics) IncSignal(signal string) {
	if m != nil {
		m.Signals.WithLabelValues(signal).Inc()
	}
}

// IncMiss records a field the extractors could not find
func (m *Metrics) IncMiss(field string) {
	if m != nil {
		m.ExtractionMisses.WithLabelValues(field).Inc()
	}
}

// WriteToTextfile dumps the registry in the node_exporter textfile format
func (m *Metrics) WriteToTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
