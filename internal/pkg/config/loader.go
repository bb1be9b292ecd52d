// Package config holds fail-open environment loaders for long-running processes.
// Invalid values never abort startup: the default is kept and a warning is returned
// so the caller can log it and bump a metric.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	envcfg "newsdesk/pkg/config"
)

// Result is the outcome of loading one setting.
type Result[T any] struct {
	Value           T
	Warning         string
	FallbackApplied bool
}

// Load reads key, parses it and validates it. An unset or blank variable yields def
// without a warning. A parse or validation failure yields def with a warning.
func Load[T any](key string, def T, parse func(string) (T, error), validate func(T) error) Result[T] {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return Result[T]{Value: def}
	}

	v, err := parse(raw)
	if err != nil {
		return fallback(key, raw, def, fmt.Errorf("parse: %w", err))
	}
	if validate != nil {
		if err := validate(v); err != nil {
			return fallback(key, raw, def, err)
		}
	}
	return Result[T]{Value: v}
}

func fallback[T any](key, raw string, def T, err error) Result[T] {
	return Result[T]{
		Value:           def,
		FallbackApplied: true,
		Warning:         fmt.Sprintf("%s=%q is invalid (%v), using default %v", key, raw, err, def),
	}
}

// String parses a string as-is.
func String(s string) (string, error) { return s, nil }

// Int parses a base-10 integer.
func Int(s string) (int, error) { return strconv.Atoi(s) }

// Duration parses Go durations plus the "7d" day form.
func Duration(s string) (time.Duration, error) { return envcfg.ParseDuration(s) }
