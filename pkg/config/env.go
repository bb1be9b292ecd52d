// Package config reads typed settings from environment variables. A malformed
// value falls back to the default with a warning instead of failing startup.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

// parseOr returns parse(value of key), or def when the variable is unset or
// does not parse.
func parseOr[T any](key string, def T, parse func(string) (T, error)) T {
	raw, ok := lookup(key)
	if !ok {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		slog.Warn("invalid environment value, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Any("default", def),
			slog.String("error", err.Error()))
		return def
	}
	return v
}

// GetEnvString returns the variable, or def when it is unset or blank.
func GetEnvString(key, def string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return def
}

// GetEnvInt parses a base-10 integer, e.g. PORT=8080.
func GetEnvInt(key string, def int) int {
	return parseOr(key, def, strconv.Atoi)
}

// GetEnvBool accepts the spellings strconv.ParseBool does (1, t, true, FALSE, ...).
func GetEnvBool(key string, def bool) bool {
	return parseOr(key, def, strconv.ParseBool)
}

// GetEnvDuration accepts Go durations plus whole days, e.g. JWT_EXPIRES_IN=7d.
func GetEnvDuration(key string, def time.Duration) time.Duration {
	return parseOr(key, def, ParseDuration)
}

// GetEnvStringList splits a comma-separated variable, dropping blank entries.
//
//	ALLOWED_USERS="editor@example.rw, admin@example.rw"
func GetEnvStringList(key string, def []string) []string {
	raw, ok := lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
