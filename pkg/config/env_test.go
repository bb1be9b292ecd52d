package config

import (
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	if got := GetEnvString("APP_ENV", "production"); got != "development" {
		t.Errorf("got %q, want development", got)
	}
	if got := GetEnvString("APP_ENV_UNSET", "production"); got != "production" {
		t.Errorf("got %q, want production", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("PORT", "9090")
	if got := GetEnvInt("PORT", 8080); got != 9090 {
		t.Errorf("got %d, want 9090", got)
	}

	for _, bad := range []string{"abc", "80eighty"} {
		t.Setenv("PORT", bad)
		if got := GetEnvInt("PORT", 8080); got != 8080 {
			t.Errorf("PORT=%q should fall back, got %d", bad, got)
		}
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"FALSE", false},
		{"maybe", true}, // 不正値はデフォルト
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("OTEL_ENABLED", tt.value)
			if got := GetEnvBool("OTEL_ENABLED", true); got != tt.want {
				t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"1h30m", 90 * time.Minute},
		{"7d", 7 * 24 * time.Hour},
		{"xd", time.Hour},
		{"soon", time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("JWT_EXPIRES_IN", tt.value)
			if got := GetEnvDuration("JWT_EXPIRES_IN", time.Hour); got != tt.want {
				t.Errorf("GetEnvDuration(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("ALLOWED_USERS", " a@example.rw, ,b@example.rw ")
	got := GetEnvStringList("ALLOWED_USERS", nil)
	if len(got) != 2 || got[0] != "a@example.rw" || got[1] != "b@example.rw" {
		t.Errorf("unexpected list: %#v", got)
	}

	t.Setenv("ALLOWED_USERS", " , ")
	if got := GetEnvStringList("ALLOWED_USERS", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Errorf("empty entries should fall back to default, got %#v", got)
	}
}

func TestValidateDurationRange(t *testing.T) {
	if err := ValidateDurationRange(time.Hour, time.Minute, 24*time.Hour); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateDurationRange(time.Second, time.Minute, time.Hour); err == nil {
		t.Error("expected below-minimum error")
	}
	if err := ValidateDurationRange(time.Minute, time.Hour, time.Second); err == nil {
		t.Error("expected invalid range error")
	}
}
