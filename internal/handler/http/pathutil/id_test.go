package pathutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantID  int64
		wantErr error
	}{
		{name: "valid", in: "123", wantID: 123},
		{name: "large", in: "9223372036854775807", wantID: 9223372036854775807},
		{name: "not a number", in: "abc", wantErr: ErrInvalidID},
		{name: "zero", in: "0", wantErr: ErrInvalidID},
		{name: "negative", in: "-1", wantErr: ErrInvalidID},
		{name: "empty", in: "", wantErr: ErrInvalidID},
		{name: "overflow", in: "9223372036854775808", wantErr: ErrInvalidID},
		{name: "float", in: "1.5", wantErr: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if id != tt.wantID {
				t.Errorf("id = %d, want %d", id, tt.wantID)
			}
		})
	}
}

func TestPathID(t *testing.T) {
	var (
		gotID  int64
		gotErr error
	)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotID, gotErr = PathID(r, "id")
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/articles/42", nil))
	if gotErr != nil || gotID != 42 {
		t.Fatalf("PathID = (%d, %v), want (42, nil)", gotID, gotErr)
	}

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/articles/x", nil))
	if !errors.Is(gotErr, ErrInvalidID) {
		t.Errorf("err = %v, want ErrInvalidID", gotErr)
	}
}

func TestPathID_NoWildcard(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/articles/42", nil)
	if _, err := PathID(req, "id"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("err = %v, want ErrInvalidID", err)
	}
}
