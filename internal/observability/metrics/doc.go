// Package metrics provides Prometheus series for newsroom activity.
//
// The package covers:
//   - editorial events (publishes, views, comments, newsletter)
//   - advertising events (ad clicks/impressions, listing views/applications)
//   - auction bids and closer runs
//   - database query timing and pool usage
//
// All metrics are registered with the Prometheus default registry and exposed via
// the /metrics endpoint of the API and the worker health server.
//
// Example usage:
//
//	import "newsdesk/internal/observability/metrics"
//
//	func (s *Service) Click(ctx context.Context, id int64) error {
//	    ...
//	    metrics.RecordAdEvent("click")
//	}
package metrics
