package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsRecorded *prometheus.CounterVec
	transactionsDeleted  prometheus.Counter
	reportsGenerated     *prometheus.CounterVec
	reportDuration       prometheus.Histogram
	reportBatchSize      prometheus.Histogram
	reportAnomalies      *prometheus.CounterVec
	authenticationEvents *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		transactionsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_deleted_total",
				Help: "Total number of transactions deleted",
			},
		),
		reportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of report computations by report and outcome",
			},
			[]string{"report", "status"},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_seconds",
				Help:    "Report generation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		reportBatchSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_batch_size",
				Help:    "Number of records fed into a report computation",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		reportAnomalies: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_anomalies_total",
				Help: "Records leniently excluded or zeroed during normalization",
			},
			[]string{"kind"},
		),
		authenticationEvents: promauto.NewCounterVec(
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
	case "transaction.recorded":
		m.transactionsRecorded.WithLabelValues(tags["type"]).Inc()
	case "transaction.deleted":
		m.transactionsDeleted.Inc()
	case "report.generated":
		m.reportsGenerated.WithLabelValues(tags["report"], tags["status"]).Inc()
	case "report.anomaly":
		if kind := tags["kind"]; kind != "" {
			m.reportAnomalies.WithLabelValues(kind).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEvents.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report.generation":
		m.reportDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "report.batch_size":
		m.reportBatchSize.Observe(value)
	}
}
