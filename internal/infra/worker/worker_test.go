package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/* ───────── config ───────── */

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestWorkerConfig_ValidateCollectsAll(t *testing.T) {
	cfg := WorkerConfig{CloseSchedule: "bad", Timezone: "Nowhere/City", JobTimeout: 0, HealthPort: 80}
	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"close schedule", "timezone", "job timeout", "health port"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("AUCTION_CLOSE_SCHEDULE", "@every 30s")
	t.Setenv("WORKER_TIMEZONE", "Europe/Bucharest")
	t.Setenv("AUCTION_CLOSE_TIMEOUT", "1m")
	t.Setenv("WORKER_HEALTH_PORT", "9200")

	m := NewWorkerMetrics(prometheus.NewRegistry())
	cfg := LoadConfigFromEnv(discardLogger(), m)

	assert.Equal(t, "@every 30s", cfg.CloseSchedule)
	assert.Equal(t, "Europe/Bucharest", cfg.Timezone)
	assert.Equal(t, time.Minute, cfg.JobTimeout)
	assert.Equal(t, 9200, cfg.HealthPort)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Config.FallbackActive))
}

func TestLoadConfigFromEnv_FallsBack(t *testing.T) {
	t.Setenv("AUCTION_CLOSE_SCHEDULE", "every minute please")
	t.Setenv("WORKER_TIMEZONE", "")
	t.Setenv("AUCTION_CLOSE_TIMEOUT", "")
	t.Setenv("WORKER_HEALTH_PORT", "22")

	m := NewWorkerMetrics(prometheus.NewRegistry())
	cfg := LoadConfigFromEnv(discardLogger(), m)

	def := DefaultConfig()
	assert.Equal(t, def.CloseSchedule, cfg.CloseSchedule)
	assert.Equal(t, def.HealthPort, cfg.HealthPort)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Config.FallbackActive))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Config.ValidationErrorsTotal.WithLabelValues("close_schedule")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Config.ValidationErrorsTotal.WithLabelValues("health_port")))
}

/* ───────── metrics ───────── */

func TestWorkerMetrics_Record(t *testing.T) {
	m := NewWorkerMetrics(prometheus.NewRegistry())
	m.RecordJobRun("success")
	m.RecordJobRun("success")
	m.RecordJobRun("failure")
	m.RecordClosed(3)
	m.RecordClosed(0)
	m.RecordJobDuration(0.2)
	m.RecordLastSuccess()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CronJobRunsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CronJobRunsTotal.WithLabelValues("failure")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.AuctionsClosedTotal))
	assert.Greater(t, testutil.ToFloat64(m.CronJobLastSuccessTimestamp), 0.0)
}

/* ───────── health ───────── */

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

func getStatus(t *testing.T, h http.Handler, path string) (int, healthResponse) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	var body healthResponse
	if rr.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	}
	return rr.Code, body
}

func TestHealthServer_Liveness(t *testing.T) {
	hs := NewHealthServer(":0", nil, discardLogger())
	code, body := getStatus(t, hs.Handler(), "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
}

func TestHealthServer_Readiness(t *testing.T) {
	tests := []struct {
		name     string
		ready    bool
		db       Pinger
		wantCode int
	}{
		{"not ready yet", false, nil, http.StatusServiceUnavailable},
		{"ready without db", true, nil, http.StatusOK},
		{"ready with healthy db", true, stubPinger{}, http.StatusOK},
		{"ready with db down", true, stubPinger{err: errors.New("dial tcp: refused")}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := NewHealthServer(":0", tt.db, discardLogger())
			hs.SetReady(tt.ready)
			code, body := getStatus(t, hs.Handler(), "/health/ready")
			assert.Equal(t, tt.wantCode, code)
			assert.NotContains(t, body.Error, "refused")
		})
	}
}

func TestHealthServer_Metrics(t *testing.T) {
	hs := NewHealthServer(":0", nil, discardLogger())
	rr := httptest.NewRecorder()
	hs.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHealthServer_StartStop(t *testing.T) {
	hs := NewHealthServer("127.0.0.1:0", nil, discardLogger())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- hs.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(6 * time.Second):
		t.Fatal("health server did not stop")
	}
}
