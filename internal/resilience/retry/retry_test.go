package retry

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

func quick(attempts int) Policy {
	return Policy{MaxAttempts: attempts, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}
}

func TestDo(t *testing.T) {
	connLost := &pgconn.PgError{Code: "08006", Message: "connection failure"}
	dup := &pgconn.PgError{Code: "23505", Message: "duplicate key"}

	tests := []struct {
		name      string
		failures  int
		err       error
		attempts  int
		wantCalls int
		wantErr   bool
	}{
		{name: "first try", failures: 0, attempts: 3, wantCalls: 1},
		{name: "recovers on third", failures: 2, err: connLost, attempts: 3, wantCalls: 3},
		{name: "exhausted", failures: 5, err: connLost, attempts: 3, wantCalls: 3, wantErr: true},
		{name: "not transient", failures: 5, err: dup, attempts: 3, wantCalls: 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Do(context.Background(), quick(tt.attempts), "test", func(context.Context) error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if tt.wantErr && !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want it to wrap %v", err, tt.err)
			}
		})
	}
}

func TestDo_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := Policy{MaxAttempts: 5, InitialDelay: time.Hour}

	calls := 0
	err := Do(ctx, p, "test", func(context.Context) error {
		calls++
		cancel()
		return syscall.ECONNREFUSED
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestMigrations_RetriesAnyError(t *testing.T) {
	p := Migrations()
	if !p.Retryable(errors.New(`relation "auctions" does not exist`)) {
		t.Error("missing table must be retried")
	}
	if p.Retryable(context.Canceled) {
		t.Error("cancellation must not be retried")
	}
	if p.MaxAttempts*int(p.InitialDelay/time.Second) != 30 {
		t.Errorf("policy waits %d x %s", p.MaxAttempts, p.InitialDelay)
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{context.DeadlineExceeded, false},
		{syscall.ECONNREFUSED, true},
		{fmt.Errorf("dial: %w", syscall.ECONNRESET), true},
		{&pgconn.PgError{Code: "08001"}, true},
		{&pgconn.PgError{Code: "57P03"}, true},
		{&pgconn.PgError{Code: "40P01"}, true},
		{&pgconn.PgError{Code: "23505"}, false},
		{errors.New("boom"), false},
	}
	for _, tt := range tests {
		if got := IsTransient(tt.err); got != tt.want {
			t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestJitter(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		got := jitter(base, 0.5)
		if got < base || got > base+base/2 {
			t.Fatalf("jitter = %s, outside [%s, %s]", got, base, base+base/2)
		}
	}
	if got := jitter(base, 0); got != base {
		t.Errorf("zero fraction changed delay to %s", got)
	}
}
