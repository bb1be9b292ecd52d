package request

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"newsdesk/internal/domain/entity"
)

type sample struct {
	Title string `json:"title" validate:"notblank"`
	Count int    `json:"count" validate:"gte=0"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   error
		wantField string
	}{
		{name: "ok", body: `{"title":"hello","count":2}`},
		{name: "empty body", body: ``, wantErr: ErrEmptyBody},
		{name: "malformed", body: `{"title":`, wantErr: ErrInvalidBody},
		{name: "wrong type", body: `{"title":"x","count":"two"}`, wantErr: ErrInvalidBody},
		{name: "trailing document", body: `{"title":"x"}{"title":"y"}`, wantErr: ErrInvalidBody},
		{name: "blank title", body: `{"title":"   "}`, wantErr: entity.ErrValidationFailed, wantField: "title"},
		{name: "negative count", body: `{"title":"x","count":-1}`, wantErr: entity.ErrValidationFailed, wantField: "count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst sample
			err := DecodeJSON(req, &dst)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantField != "" {
				var verrs entity.ValidationErrors
				if !errors.As(err, &verrs) {
					t.Fatalf("err = %T, want ValidationErrors", err)
				}
				if _, ok := verrs[tt.wantField]; !ok {
					t.Errorf("fields = %v, want key %q", verrs, tt.wantField)
				}
			}
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"`+strings.Repeat("a", 64)+`"}`))
	req.Body = http.MaxBytesReader(rec, req.Body, 16)

	var dst sample
	err := DecodeJSON(req, &dst)
	if !errors.Is(err, ErrInvalidBody) {
		t.Fatalf("err = %v, want ErrInvalidBody", err)
	}
	if !strings.Contains(err.Error(), "16 bytes") {
		t.Errorf("err = %q, want limit in message", err)
	}
}

func TestBoolQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?a=true&b=0&c=maybe", nil)

	if v, err := BoolQuery(req, "a"); err != nil || v == nil || !*v {
		t.Errorf("a = %v, %v", v, err)
	}
	if v, err := BoolQuery(req, "b"); err != nil || v == nil || *v {
		t.Errorf("b = %v, %v", v, err)
	}
	if v, err := BoolQuery(req, "missing"); err != nil || v != nil {
		t.Errorf("missing = %v, %v", v, err)
	}
	if _, err := BoolQuery(req, "c"); err == nil {
		t.Error("expected error for c")
	}
}

func TestLimitQuery(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{query: "", want: 10},
		{query: "limit=5", want: 5},
		{query: "limit=500", want: 100},
		{query: "limit=0", wantErr: true},
		{query: "limit=abc", wantErr: true},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
		got, err := LimitQuery(req, 10, 100)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: err = %v, wantErr %v", tt.query, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("%q: got %d, want %d", tt.query, got, tt.want)
		}
	}
}
