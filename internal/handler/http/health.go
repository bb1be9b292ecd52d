// Package http holds the middleware, health probes and metrics shared by every
// resource handler package under it.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"newsdesk/internal/handler/http/respond"
)

// Pinger is satisfied by *sql.DB and by the circuit-breaker wrapped DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// breakerDB is the extra surface of circuitbreaker.DBCircuitBreaker.
type breakerDB interface {
	State() gobreaker.State
	DB() *sql.DB
}

// HealthResponse represents the JSON response for GET /health.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy", "degraded" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler reports DB connectivity and pool usage.
type HealthHandler struct {
	DB      Pinger
	Version string
	Now     func() time.Time
}

// ServeHTTP 詳細ヘルスチェック
// @Summary      詳細ヘルスチェック
// @Description  DB 接続（サーキットブレーカー経由）とコネクションプールの状態を返します
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	db := h.checkDatabase(ctx)
	status, code := "healthy", http.StatusOK
	switch db.Status {
	case "unhealthy":
		status, code = "unhealthy", http.StatusServiceUnavailable
	case "degraded":
		status = "degraded"
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: now().UTC().Format(time.RFC3339),
		Checks:    map[string]CheckStatus{"database": db},
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if h.DB == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}

	details := map[string]any{}
	if b, ok := h.DB.(breakerDB); ok {
		details["circuit_breaker"] = b.State().String()
	}

	if err := h.DB.PingContext(ctx); err != nil {
		slog.Default().Warn("health: database ping failed", slog.Any("error", err))
		return CheckStatus{Status: "unhealthy", Message: "database unreachable", Details: details}
	}

	var sqlDB *sql.DB
	switch v := h.DB.(type) {
	case *sql.DB:
		sqlDB = v
	case breakerDB:
		sqlDB = v.DB()
	}
	if sqlDB == nil {
		return CheckStatus{Status: "healthy", Details: details}
	}

	stats := sqlDB.Stats()
	details["max_open_connections"] = stats.MaxOpenConnections
	details["open_connections"] = stats.OpenConnections
	details["in_use"] = stats.InUse
	details["idle"] = stats.Idle
	details["wait_count"] = stats.WaitCount
	details["wait_duration_ms"] = stats.WaitDuration.Milliseconds()

	if stats.MaxOpenConnections == 0 {
		return CheckStatus{Status: "degraded", Message: "connection pool max connections not configured", Details: details}
	}
	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= 80 {
		return CheckStatus{Status: "degraded", Message: "connection pool utilization above 80%", Details: details}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

// APIHealthHandler answers the lightweight GET /api/health used by the frontend.
type APIHealthHandler struct{}

// ServeHTTP 簡易ヘルスチェック
// @Summary      簡易ヘルスチェック
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]bool
// @Router       /api/health [get]
func (APIHealthHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ReadyHandler handles readiness probes: 200 once the DB answers a ping.
type ReadyHandler struct {
	DB Pinger
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	if err := h.DB.PingContext(ctx); err != nil {
		http.Error(w, "database not ready", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ready"))
}

// LiveHandler always answers 200 while the process can serve requests.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("alive"))
}

// RegisterOps wires the probe, metrics endpoints onto mux.
func RegisterOps(mux *http.ServeMux, db Pinger, version string) {
	mux.Handle("GET /api/health", APIHealthHandler{})
	mux.Handle("GET /health", &HealthHandler{DB: db, Version: version})
	mux.Handle("GET /ready", &ReadyHandler{DB: db})
	mux.Handle("GET /live", LiveHandler{})
	mux.Handle("GET /metrics", MetricsHandler())
}
