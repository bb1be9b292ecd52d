package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"newsdesk/internal/handler/http/respond"
	pgRepo "newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	workerPkg "newsdesk/internal/infra/worker"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/resilience/circuitbreaker"
	"newsdesk/internal/resilience/retry"
	aucUC "newsdesk/internal/usecase/auction"
)

// waitForMigrations polls until the API process has migrated the schema.
func waitForMigrations(ctx context.Context, logger *slog.Logger, db *sql.DB) {
	err := retry.Do(ctx, retry.Migrations(), "wait for migrations", func(ctx context.Context) error {
		_, err := db.ExecContext(ctx, "SELECT 1 FROM auctions LIMIT 1")
		return err
	})
	if err != nil {
		logger.Error("migrations did not complete in time", slog.Any("error", err))
		os.Exit(1)
	}
}

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 設定は fail-open（不正値はデフォルトに戻してメトリクスに記録）
	metrics := workerPkg.NewWorkerMetrics(nil)
	cfg := workerPkg.LoadConfigFromEnv(logger, metrics)
	logger.Info("worker configuration loaded",
		slog.String("close_schedule", cfg.CloseSchedule),
		slog.String("timezone", cfg.Timezone),
		slog.Duration("job_timeout", cfg.JobTimeout),
		slog.Int("health_port", cfg.HealthPort))

	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	go breaker.ReportPoolStats(ctx, 15*time.Second)

	healthAddr := fmt.Sprintf(":%d", cfg.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, breaker, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()
	logger.Info("health check server started", slog.String("addr", healthAddr))

	svc := &aucUC.Service{Repo: pgRepo.NewAuctionRepo(breaker)}
	runCron(ctx, logger, svc, cfg, metrics, healthServer)
}

// initDatabase opens the database connection and waits for migrations to complete.
func initDatabase(logger *slog.Logger) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.Open(ctx)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	waitForMigrations(ctx, logger, database)
	return database
}

// runCron schedules the closer and blocks until ctx is cancelled.
func runCron(ctx context.Context, logger *slog.Logger, svc *aucUC.Service, cfg *workerPkg.WorkerConfig, metrics *workerPkg.WorkerMetrics, healthServer *workerPkg.HealthServer) {
	c := cron.New(
		cron.WithLocation(cfg.Location()),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	_, err := c.AddFunc(cfg.CloseSchedule, func() {
		runCloseJob(ctx, logger, svc, cfg, metrics)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", cfg.CloseSchedule),
		slog.String("timezone", cfg.Timezone))

	<-ctx.Done()
	logger.Info("shutting down worker...")
	healthServer.SetReady(false)
	<-c.Stop().Done()
	logger.Info("worker stopped")
}

// runCloseJob ends every active auction whose end_time has passed.
func runCloseJob(parent context.Context, logger *slog.Logger, svc *aucUC.Service, cfg *workerPkg.WorkerConfig, metrics *workerPkg.WorkerMetrics) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(parent, cfg.JobTimeout)
	defer cancel()

	closed, err := svc.CloseExpired(ctx)
	metrics.RecordJobDuration(time.Since(start).Seconds())
	if err != nil {
		// 機密情報をマスクしてログ出力
		logger.Error("auction close failed", slog.Any("error", respond.SanitizeError(err)))
		metrics.RecordJobRun("failure")
		return
	}

	metrics.RecordJobRun("success")
	metrics.RecordClosed(closed)
	metrics.RecordLastSuccess()

	if closed > 0 {
		logger.Info("auctions closed",
			slog.Int64("closed", closed),
			slog.Duration("duration", time.Since(start)))
	} else {
		logger.Debug("no expired auctions", slog.Duration("duration", time.Since(start)))
	}
}
