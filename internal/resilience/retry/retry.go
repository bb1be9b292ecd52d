// Package retry re-runs an operation with exponential backoff and jitter while
// its error looks transient.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Policy controls how often and how long Do keeps trying.
type Policy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	// Multiplier of 1 gives a fixed interval.
	Multiplier float64
	// JitterFraction adds up to that share of the delay at random.
	JitterFraction float64
	// Retryable decides which errors are worth another attempt. nil means IsTransient.
	Retryable func(error) bool
}

// Startup waits for Postgres to accept connections when the API container
// comes up next to it. Eight attempts cover roughly a minute.
func Startup() Policy {
	return Policy{
		MaxAttempts:    8,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       10 * time.Second,
		Multiplier:     2,
		JitterFraction: 0.1,
	}
}

// Migrations polls every 3s, for up to 30s, until the API has created the
// schema. Any error counts as "not yet".
func Migrations() Policy {
	return Policy{
		MaxAttempts:  10,
		InitialDelay: 3 * time.Second,
		MaxDelay:     3 * time.Second,
		Multiplier:   1,
		Retryable:    func(err error) bool { return !isContextErr(err) },
	}
}

// Do runs fn until it succeeds, returns a non-retryable error or the policy is
// exhausted. op names the operation in logs.
func Do(ctx context.Context, p Policy, op string, fn func(ctx context.Context) error) error {
	retryable := p.Retryable
	if retryable == nil {
		retryable = IsTransient
	}
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.InitialDelay

	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(ctx); err == nil {
			if attempt > 1 {
				slog.Info("operation succeeded after retry", slog.String("op", op), slog.Int("attempt", attempt))
			}
			return nil
		}
		if !retryable(err) {
			return err
		}
		if attempt == attempts {
			return fmt.Errorf("%s: giving up after %d attempts: %w", op, attempts, err)
		}

		slog.Warn("operation failed, retrying",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", attempts),
			slog.Duration("delay", delay),
			slog.Any("error", err))

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return fmt.Errorf("%s: retry aborted: %w", op, ctx.Err())
		case <-t.C:
		}

		delay = next(delay, p)
	}
}

func next(d time.Duration, p Policy) time.Duration {
	if p.Multiplier > 0 {
		d = time.Duration(float64(d) * p.Multiplier)
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	return jitter(d, p.JitterFraction)
}

func jitter(d time.Duration, fraction float64) time.Duration {
	if fraction <= 0 {
		return d
	}
	fraction = min(fraction, 1)
	// #nosec G404 -- backoff jitter does not need crypto randomness
	return d + time.Duration(rand.Float64()*float64(d)*fraction)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsTransient reports whether err is a network or Postgres failure that may
// clear on its own.
func IsTransient(err error) bool {
	if err == nil || isContextErr(err) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}

	// 08xxx 接続系、57P01/57P03 シャットダウン・起動中、40001/40P01 直列化・デッドロック
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "08"):
			return true
		case pgErr.Code == "57P01", pgErr.Code == "57P03":
			return true
		case pgErr.Code == "40001", pgErr.Code == "40P01":
			return true
		}
	}
	return false
}
