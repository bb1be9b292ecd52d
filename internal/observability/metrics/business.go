package metrics

import (
	"time"
)

// RecordArticlePublished counts one publish transition.
func RecordArticlePublished() {
	ArticlesPublishedTotal.Inc()
}

// RecordArticleView counts one view increment.
func RecordArticleView() {
	ArticleViewsTotal.Inc()
}

// UpdateArticlesTotal replaces the per-status article gauge.
func UpdateArticlesTotal(byStatus map[string]int64) {
	ArticlesTotal.Reset()
	for status, n := range byStatus {
		ArticlesTotal.WithLabelValues(status).Set(float64(n))
	}
}

// RecordCommentSubmitted counts a new unapproved comment.
func RecordCommentSubmitted() {
	CommentsSubmittedTotal.Inc()
}

// RecordNewsletter counts a subscribe or unsubscribe.
func RecordNewsletter(action string) {
	NewsletterEventsTotal.WithLabelValues(action).Inc()
}

// RecordAdEvent counts a click or impression.
func RecordAdEvent(event string) {
	AdEventsTotal.WithLabelValues(event).Inc()
}

// RecordAdvertisementEvent counts a listing view or application.
func RecordAdvertisementEvent(event string) {
	AdvertisementEventsTotal.WithLabelValues(event).Inc()
}

// RecordBid counts one bid attempt by outcome.
func RecordBid(result string) {
	BidsTotal.WithLabelValues(result).Inc()
}

// RecordAuctionClose records one closer run.
func RecordAuctionClose(closed int64, duration time.Duration) {
	if closed > 0 {
		AuctionsClosedTotal.Add(float64(closed))
	}
	AuctionCloseDuration.Observe(duration.Seconds())
}

// RecordDBQuery records the duration of a named database operation.
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats sets the pool gauges.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}

// SetDBCircuitState publishes a breaker state; see DBCircuitState for the encoding.
func SetDBCircuitState(breaker string, state int) {
	DBCircuitState.WithLabelValues(breaker).Set(float64(state))
}
