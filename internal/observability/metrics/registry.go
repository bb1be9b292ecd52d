// Package metrics provides centralized Prometheus metrics for the newsroom domain.
// HTTP request metrics live with the HTTP middleware; this package only holds
// business and database series.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Editorial metrics
var (
	// ArticlesPublishedTotal counts draft→published transitions and direct publishes.
	ArticlesPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_published_total",
			Help: "Total number of articles published",
		},
	)

	ArticleViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "article_views_total",
			Help: "Total number of recorded article views",
		},
	)

	// ArticlesTotal is refreshed by the stats command and the worker.
	ArticlesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Number of articles in the database by status",
		},
		[]string{"status"},
	)

	CommentsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comments_submitted_total",
			Help: "Total number of reader comments submitted for moderation",
		},
	)

	NewsletterEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_events_total",
			Help: "Newsletter subscription changes",
		},
		[]string{"action"}, // subscribe | unsubscribe
	)
)

// Advertising metrics
var (
	AdEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ad_events_total",
			Help: "Display ad clicks and impressions",
		},
		[]string{"event"}, // click | impression
	)

	AdvertisementEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advertisement_events_total",
			Help: "Job and classified listing views and applications",
		},
		[]string{"event"}, // view | apply
	)
)

// Auction metrics
var (
	BidsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_bids_total",
			Help: "Bids by outcome",
		},
		[]string{"result"}, // accepted | too_low | closed | error
	)

	AuctionsClosedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auctions_closed_total",
			Help: "Auctions moved from active to ended by the closer",
		},
	)

	AuctionCloseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "auction_close_duration_seconds",
			Help:    "Duration of one auction closer run",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)
)

// Database metrics track database performance
var (
	// DBQueryDuration measures database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// DBCircuitState is 0 closed, 1 half-open, 2 open.
	DBCircuitState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "db_circuit_breaker_state",
			Help: "State of the database circuit breaker (0 closed, 1 half-open, 2 open)",
		},
		[]string{"breaker"},
	)
)
