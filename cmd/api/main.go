package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/config"
	pgRepo "newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/resilience/circuitbreaker"
	"newsdesk/internal/utils/text"

	adUC "newsdesk/internal/usecase/ad"
	advUC "newsdesk/internal/usecase/advertisement"
	artUC "newsdesk/internal/usecase/article"
	aucUC "newsdesk/internal/usecase/auction"
	authUC "newsdesk/internal/usecase/auth"
	catUC "newsdesk/internal/usecase/category"
	comUC "newsdesk/internal/usecase/comment"
	nlUC "newsdesk/internal/usecase/newsletter"

	hhttp "newsdesk/internal/handler/http"
	had "newsdesk/internal/handler/http/ad"
	hadv "newsdesk/internal/handler/http/advertisement"
	harticle "newsdesk/internal/handler/http/article"
	hauction "newsdesk/internal/handler/http/auction"
	hauth "newsdesk/internal/handler/http/auth"
	hcategory "newsdesk/internal/handler/http/category"
	hcomment "newsdesk/internal/handler/http/comment"
	"newsdesk/internal/handler/http/middleware"
	hnewsletter "newsdesk/internal/handler/http/newsletter"
	"newsdesk/internal/handler/http/requestid"
	"newsdesk/internal/handler/http/respond"
	authservice "newsdesk/internal/service/auth"

	_ "newsdesk/docs" // swagger docs
)

// @title           Newsdesk API
// @version         1.0
// @description     ニュースサイトのバックエンド REST API
// @description     記事・カテゴリ・ディスプレイ広告・求人/クラシファイド・オークション・コメント・ニュースレターを扱います。

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT トークンによる認証。ヘッダーに "Bearer {token}" 形式で指定してください。

const (
	maxBodyBytes    = 1 << 20
	requestTimeout  = 30 * time.Second
	limiterSweep    = 5 * time.Minute
	limiterIdleTTL  = 15 * time.Minute
	poolStatsPeriod = 15 * time.Second
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load("")
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if err := cfg.ValidateJWTSecret(); err != nil {
		logger.Error("JWT secret validation failed", slog.Any("error", err))
		os.Exit(1)
	}
	respond.SetDevelopment(cfg.IsDevelopment())

	shutdownTracing, err := tracing.Init(tracing.Config{
		Enabled:     cfg.OTELEnabled,
		ServiceName: "newsdesk-api",
		Version:     cfg.Version,
	})
	if err != nil {
		logger.Error("failed to initialise tracing", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	components := setupServer(logger, cfg, database)
	runServer(logger, cfg, components)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		logger.Warn("tracer shutdown failed", slog.Any("error", err))
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.Open(ctx)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	version, err := db.MigrateUp(database)
	if err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrated", slog.Uint64("schema_version", uint64(version)))
	return database
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler     http.Handler
	AuthLimiter *middleware.IPRateLimiter
	Breaker     *circuitbreaker.DBCircuitBreaker
}

// setupServer builds repositories, services, routes and the middleware chain.
func setupServer(logger *slog.Logger, cfg *config.Config, database *sql.DB) *ServerComponents {
	// リポジトリはすべてサーキットブレーカー経由で DB に触る
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	users := pgRepo.NewUserRepo(breaker)
	categories := pgRepo.NewCategoryRepo(breaker)
	articles := pgRepo.NewArticleRepo(breaker)
	comments := pgRepo.NewCommentRepo(breaker)

	tokens := authservice.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	guard := hauth.Guard{Tokens: tokens}

	trusted, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		logger.Error("invalid TRUSTED_PROXIES", slog.Any("error", err))
		os.Exit(1)
	}
	if len(trusted) > 0 {
		logger.Info("rate limiting: trusted proxy mode enabled", slog.Int("trusted_proxies_count", len(trusted)))
	} else {
		logger.Info("rate limiting: using RemoteAddr (proxy headers ignored)")
	}
	authLimiter := middleware.NewIPRateLimiter("auth", cfg.Auth.RateLimit, middleware.NewIPExtractor(trusted))

	pageCfg := pagination.Config{
		DefaultLimit: cfg.Pagination.DefaultLimit,
		MaxLimit:     cfg.Pagination.MaxLimit,
	}

	mux := http.NewServeMux()
	hhttp.RegisterOps(mux, breaker, cfg.Version)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	hauth.Register(mux, authUC.Service{Repo: users, Tokens: tokens, Config: cfg.Auth}, guard, authLimiter.Middleware, logger)
	harticle.Register(mux, artUC.Service{
		Repo:       articles,
		Categories: categories,
		Comments:   comments,
		Sanitizer:  text.NewSanitizer(),
	}, guard, harticle.Options{
		Pagination: pageCfg,
		SiteURL:    cfg.SiteURL,
		FeedTitle:  cfg.FeedTitle,
		Logger:     logger,
	})
	hcategory.Register(mux, catUC.Service{Repo: categories, Articles: articles}, guard)
	hcomment.Register(mux, comUC.Service{Repo: comments}, guard)
	had.Register(mux, adUC.Service{Repo: pgRepo.NewAdRepo(breaker)}, guard)
	hadv.Register(mux, advUC.Service{Repo: pgRepo.NewAdvertisementRepo(breaker)}, guard, pageCfg, logger)
	hauction.Register(mux, aucUC.Service{Repo: pgRepo.NewAuctionRepo(breaker)}, guard, logger)
	hnewsletter.Register(mux, nlUC.Service{Repo: pgRepo.NewSubscriberRepo(breaker)}, guard)

	cors := middleware.NewCORSConfig(cfg.CORS.AllowedOrigins, cfg.CORS.MaxAge, logger)
	logger.Info("CORS enabled",
		slog.Int("allowed_origins_count", len(cors.AllowedOrigins)),
		slog.Any("allowed_origins", cors.AllowedOrigins),
		slog.Int("max_age", cors.MaxAge))

	// 外側から: CORS → セキュリティヘッダー → Request ID → Tracing → Logging → Metrics → Recover → 入力検証 → Body 制限 → Timeout
	handler := hhttp.Chain(mux,
		middleware.CORS(cors),
		middleware.SecurityHeaders("/swagger/"),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		hhttp.Recover(logger),
		hhttp.InputValidation(),
		hhttp.LimitRequestBody(maxBodyBytes),
		hhttp.Timeout(requestTimeout),
	)

	return &ServerComponents{Handler: handler, AuthLimiter: authLimiter, Breaker: breaker}
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.Config, components *ServerComponents) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	components.AuthLimiter.StartCleanup(ctx, limiterSweep, limiterIdleTTL, logger)
	go components.Breaker.ReportPoolStats(ctx, poolStatsPeriod)

	addr := ":" + strconv.Itoa(cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("env", cfg.Env),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
