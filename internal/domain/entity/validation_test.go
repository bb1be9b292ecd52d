package entity

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "valid https URL", url: "https://cdn.example.com/a.jpg", wantErr: false},
		{name: "valid http URL", url: "http://example.com/ad", wantErr: false},
		{name: "valid URL with query", url: "https://example.com/x?utm=1", wantErr: false},
		{name: "root-relative upload path", url: "/uploads/2024/photo.jpg", wantErr: false},
		{name: "empty URL", url: "", wantErr: true},
		{name: "invalid scheme - ftp", url: "ftp://example.com/file", wantErr: true},
		{name: "invalid scheme - javascript", url: "javascript:alert(1)", wantErr: true},
		{name: "no host", url: "https://", wantErr: true},
		{name: "malformed URL", url: "ht!tp://example.com", wantErr: true},
		{name: "no scheme", url: "example.com", wantErr: true},
		{name: "bare slash", url: "/", wantErr: true},
		{name: "URL exceeding maximum length", url: "https://example.com/" + strings.Repeat("a", 2050), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL("imageUrl", tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Field != "imageUrl" {
				t.Errorf("Field = %q, want imageUrl", ve.Field)
			}
			if !errors.Is(err, ErrValidationFailed) {
				t.Errorf("expected errors.Is(err, ErrValidationFailed)")
			}
		})
	}
}
