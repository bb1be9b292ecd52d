package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"newsdesk/internal/handler/http/respond"
)

var rateLimitRejections = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_rate_limit_rejections_total",
		Help: "Requests rejected by the per-IP rate limiter",
	},
	[]string{"limiter"},
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter is a token bucket per client IP. perMinute tokens refill evenly
// over a minute and a full bucket allows a burst of perMinute requests.
type IPRateLimiter struct {
	name      string
	perMinute int
	extractor IPExtractor
	now       func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewIPRateLimiter creates a limiter. name labels the rejection metric.
func NewIPRateLimiter(name string, perMinute int, extractor IPExtractor) *IPRateLimiter {
	if perMinute <= 0 {
		perMinute = 5
	}
	if extractor == nil {
		extractor = RemoteAddrExtractor{}
	}
	return &IPRateLimiter{
		name:      name,
		perMinute: perMinute,
		extractor: extractor,
		now:       time.Now,
		visitors:  make(map[string]*visitor),
	}
}

// WithClock replaces the time source (tests).
func (l *IPRateLimiter) WithClock(now func() time.Time) *IPRateLimiter {
	l.now = now
	return l
}

func (l *IPRateLimiter) get(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.perMinute),
		}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// Allow consumes one token for ip and reports the wait until the next one when empty.
func (l *IPRateLimiter) Allow(ip string) (bool, time.Duration) {
	now := l.now()
	lim := l.get(ip, now)

	r := lim.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Len returns the number of tracked IPs.
func (l *IPRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// Sweep forgets IPs idle for longer than ttl and returns how many were removed.
func (l *IPRateLimiter) Sweep(ttl time.Duration) int {
	cutoff := l.now().Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for ip, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
			removed++
		}
	}
	return removed
}

// StartCleanup sweeps idle entries every interval until ctx is done.
func (l *IPRateLimiter) StartCleanup(ctx context.Context, interval, ttl time.Duration, logger *slog.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := l.Sweep(ttl); n > 0 && logger != nil {
					logger.Debug("rate limiter cleanup",
						slog.String("limiter", l.name),
						slog.Int("removed", n),
						slog.Int("remaining", l.Len()))
				}
			}
		}
	}()
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, err := l.extractor.ExtractIP(r)
		if err != nil {
			ip = r.RemoteAddr
		}

		ok, wait := l.Allow(ip)
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.perMinute))
		if !ok {
			retry := int((wait + time.Second - 1) / time.Second)
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			rateLimitRejections.WithLabelValues(l.name).Inc()
			respond.JSON(w, http.StatusTooManyRequests, map[string]string{
				"error": "too many requests, please try again later",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
