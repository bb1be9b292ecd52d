package worker

import (
	"newsdesk/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WorkerMetrics groups the auction closer's Prometheus collectors.
type WorkerMetrics struct {
	Config *config.Metrics

	// CronJobRunsTotal counts sweeps by status (success/failure).
	CronJobRunsTotal *prometheus.CounterVec
	// CronJobDurationSeconds observes sweep wall time.
	CronJobDurationSeconds prometheus.Histogram
	// AuctionsClosedTotal counts auctions moved to ended.
	AuctionsClosedTotal prometheus.Counter
	// CronJobLastSuccessTimestamp is the Unix time of the last successful sweep.
	CronJobLastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics registers the collectors on reg, or the default registerer when nil.
func NewWorkerMetrics(reg prometheus.Registerer) *WorkerMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &WorkerMetrics{
		Config: config.NewMetrics("worker", reg),

		CronJobRunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_cron_job_runs_total",
			Help: "Total number of cron job runs by status (success/failure)",
		}, []string{"status"}),

		CronJobDurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_cron_job_duration_seconds",
			Help:    "Duration of cron job execution in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}),

		AuctionsClosedTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "worker_auctions_closed_total",
			Help: "Total number of auctions closed by the worker",
		}),

		CronJobLastSuccessTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: "worker_cron_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful cron job run",
		}),
	}
}

// RecordJobRun counts one sweep with the given status.
func (m *WorkerMetrics) RecordJobRun(status string) {
	m.CronJobRunsTotal.WithLabelValues(status).Inc()
}

// RecordJobDuration observes a sweep's duration.
func (m *WorkerMetrics) RecordJobDuration(seconds float64) {
	m.CronJobDurationSeconds.Observe(seconds)
}

// RecordClosed adds n closed auctions.
func (m *WorkerMetrics) RecordClosed(n int64) {
	m.AuctionsClosedTotal.Add(float64(n))
}

// RecordLastSuccess stamps the last successful sweep.
func (m *WorkerMetrics) RecordLastSuccess() {
	m.CronJobLastSuccessTimestamp.SetToCurrentTime()
}
