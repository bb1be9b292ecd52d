package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/resilience/circuitbreaker"
)

func newPingDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(sqlmock.Sqlmock)
		maxOpen    int
		wantCode   int
		wantStatus string
	}{
		{
			name:       "healthy database",
			setupMock:  func(m sqlmock.Sqlmock) { m.ExpectPing() },
			maxOpen:    10,
			wantCode:   http.StatusOK,
			wantStatus: "healthy",
		},
		{
			name:       "ping error",
			setupMock:  func(m sqlmock.Sqlmock) { m.ExpectPing().WillReturnError(sql.ErrConnDone) },
			maxOpen:    10,
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
		},
		{
			name:       "pool limit not configured",
			setupMock:  func(m sqlmock.Sqlmock) { m.ExpectPing() },
			maxOpen:    0,
			wantCode:   http.StatusOK,
			wantStatus: "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newPingDB(t)
			db.SetMaxOpenConns(tt.maxOpen)
			tt.setupMock(mock)

			fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
			h := &HealthHandler{DB: db, Version: "v1.2.3", Now: func() time.Time { return fixed }}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))

			var resp HealthResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, "v1.2.3", resp.Version)
			assert.Equal(t, "2026-03-01T12:00:00Z", resp.Timestamp)
			assert.Contains(t, resp.Checks, "database")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHealthHandler_PingErrorIsNotLeaked(t *testing.T) {
	db, mock := newPingDB(t)
	mock.ExpectPing().WillReturnError(sql.ErrConnDone)

	rec := httptest.NewRecorder()
	(&HealthHandler{DB: db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotContains(t, rec.Body.String(), sql.ErrConnDone.Error())
	assert.Contains(t, rec.Body.String(), "database unreachable")
}

func TestHealthHandler_NoDatabaseConfigured(t *testing.T) {
	rec := httptest.NewRecorder()
	(&HealthHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "not configured", resp.Checks["database"].Message)
}

func TestHealthHandler_ThroughCircuitBreaker(t *testing.T) {
	db, mock := newPingDB(t)
	db.SetMaxOpenConns(5)
	mock.ExpectPing()

	rec := httptest.NewRecorder()
	h := &HealthHandler{DB: circuitbreaker.NewDBCircuitBreaker(db)}
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "closed", resp.Checks["database"].Details["circuit_breaker"])
	assert.EqualValues(t, 5, resp.Checks["database"].Details["max_open_connections"])
}

func TestAPIHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	APIHealthHandler{}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestReadyHandler(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		db, mock := newPingDB(t)
		mock.ExpectPing()

		rec := httptest.NewRecorder()
		(&ReadyHandler{DB: db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ready", rec.Body.String())
	})

	t.Run("not ready", func(t *testing.T) {
		db, mock := newPingDB(t)
		mock.ExpectPing().WillReturnError(sql.ErrConnDone)

		rec := httptest.NewRecorder()
		(&ReadyHandler{DB: db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("no database", func(t *testing.T) {
		rec := httptest.NewRecorder()
		(&ReadyHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestLiveHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	LiveHandler{}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
}

func TestRegisterOps(t *testing.T) {
	db, mock := newPingDB(t)
	mock.ExpectPing()

	mux := http.NewServeMux()
	RegisterOps(mux, db, "test")

	for _, path := range []string{"/api/health", "/live", "/metrics", "/ready"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
