package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	analysesTotal             *prometheus.CounterVec
	analysisDuration          prometheus.Histogram
	analysisFailuresTotal     *prometheus.CounterVec
	redFlagsRaisedTotal       *prometheus.CounterVec
	overallScore              prometheus.Histogram
	transactionsAnalyzed      prometheus.Histogram
	dealsCreatedTotal         prometheus.Counter
	transactionsIngestedTotal prometheus.Counter
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deal_analyses_total",
				Help: "Total number of deal analyses completed",
			},
			[]string{"verdict", "risk_tier"},
		),
		analysisDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "deal_analysis_duration_milliseconds",
				Help:    "Deal analysis duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		analysisFailuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deal_analysis_failures_total",
				Help: "Total number of failed deal analyses",
			},
			[]string{"reason"},
		),
		redFlagsRaisedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "red_flags_raised_total",
				Help: "Total number of red flags raised by the detector",
			},
			[]string{"type", "severity"},
		),
		overallScore: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "scorecard_overall_score",
				Help:    "Distribution of overall scorecard scores",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		transactionsAnalyzed: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analysis_transaction_count",
				Help:    "Number of transactions per analysis run",
				Buckets: prometheus.ExponentialBuckets(10, 4, 8),
			},
		),
		dealsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "deals_created_total",
				Help: "Total number of deals created",
			},
		),
		transactionsIngestedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_ingested_total",
				Help: "Total number of statement transactions ingested",
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "analysis.completed":
		m.analysesTotal.WithLabelValues(tags["verdict"], tags["risk_tier"]).Inc()
	case "analysis.failed":
		m.analysisFailuresTotal.WithLabelValues(tags["reason"]).Inc()
	case "analysis.red_flag":
		m.redFlagsRaisedTotal.WithLabelValues(tags["type"], tags["severity"]).Inc()
	case "deal.created":
		m.dealsCreatedTotal.Inc()
	case "transactions.ingested":
		m.transactionsIngestedTotal.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "analysis.duration":
		m.analysisDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "analysis.overall_score":
		m.overallScore.Observe(value)
	case "analysis.transaction_count":
		m.transactionsAnalyzed.Observe(value)
	}
}
