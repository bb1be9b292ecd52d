// Package worker contains the runtime plumbing for the background auction closer:
// its environment configuration, Prometheus metrics and health endpoints.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	"newsdesk/internal/pkg/config"
)

// WorkerConfig holds the settings for the auction closer process.
type WorkerConfig struct {
	// CloseSchedule is the cron expression that triggers the expired-auction sweep.
	CloseSchedule string
	// Timezone is the IANA location the schedule is evaluated in.
	Timezone string
	// JobTimeout bounds a single sweep.
	JobTimeout time.Duration
	// HealthPort serves /health, /health/ready and /metrics.
	HealthPort int
}

// DefaultConfig sweeps once a minute in UTC.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CloseSchedule: "*/1 * * * *",
		Timezone:      "UTC",
		JobTimeout:    30 * time.Second,
		HealthPort:    9091,
	}
}

// Validate checks every field and reports all failures together.
func (c *WorkerConfig) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CloseSchedule); err != nil {
		errs = append(errs, fmt.Errorf("close schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.DurationRange(time.Second, 10*time.Minute)(c.JobTimeout); err != nil {
		errs = append(errs, fmt.Errorf("job timeout: %w", err))
	}
	if err := config.IntRange(1024, 65535)(c.HealthPort); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// Location resolves Timezone, falling back to UTC.
func (c *WorkerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LoadConfigFromEnv reads the worker settings. It never fails: an invalid value is
// replaced by its default, logged and counted.
//
// Environment variables:
//   - AUCTION_CLOSE_SCHEDULE (default "*/1 * * * *")
//   - WORKER_TIMEZONE (default "UTC")
//   - AUCTION_CLOSE_TIMEOUT (default "30s")
//   - WORKER_HEALTH_PORT (default 9091)
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) *WorkerConfig {
	cfg := DefaultConfig()
	fallbackApplied := false

	warn := func(field, warning string) {
		fallbackApplied = true
		metrics.Config.RecordValidationError(field)
		logger.Warn("Configuration fallback applied",
			slog.String("field", field),
			slog.String("warning", warning))
	}

	schedule := config.Load("AUCTION_CLOSE_SCHEDULE", cfg.CloseSchedule, config.String, config.ValidateCronSchedule)
	cfg.CloseSchedule = schedule.Value
	if schedule.FallbackApplied {
		warn("close_schedule", schedule.Warning)
	}

	tz := config.Load("WORKER_TIMEZONE", cfg.Timezone, config.String, config.ValidateTimezone)
	cfg.Timezone = tz.Value
	if tz.FallbackApplied {
		warn("timezone", tz.Warning)
	}

	timeout := config.Load("AUCTION_CLOSE_TIMEOUT", cfg.JobTimeout, config.Duration, config.DurationRange(time.Second, 10*time.Minute))
	cfg.JobTimeout = timeout.Value
	if timeout.FallbackApplied {
		warn("job_timeout", timeout.Warning)
	}

	port := config.Load("WORKER_HEALTH_PORT", cfg.HealthPort, config.Int, config.IntRange(1024, 65535))
	cfg.HealthPort = port.Value
	if port.FallbackApplied {
		warn("health_port", port.Warning)
	}

	metrics.Config.RecordLoad(fallbackApplied)
	return &cfg
}
