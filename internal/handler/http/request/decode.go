// Package request decodes and validates JSON request bodies and common query parameters.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"newsdesk/internal/pkg/validate"
)

var (
	// ErrInvalidBody is returned for malformed or oversized JSON.
	ErrInvalidBody = errors.New("invalid request body")
	// ErrEmptyBody is returned when a body is required but absent.
	ErrEmptyBody = errors.New("invalid request body: body is required")
)

// DecodeJSON reads a single JSON document from r into dst and validates its struct tags.
// Validation failures come back as entity.ValidationErrors.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return ErrEmptyBody
		case errors.As(err, &maxErr):
			return fmt.Errorf("%w: body must be at most %d bytes", ErrInvalidBody, maxErr.Limit)
		default:
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field != "" {
				return fmt.Errorf("%w: %s has the wrong type", ErrInvalidBody, typeErr.Field)
			}
			return ErrInvalidBody
		}
	}
	// 2つ目のドキュメントは受け付けない
	if dec.More() {
		return ErrInvalidBody
	}
	return validate.Struct(dst)
}

// BoolQuery parses ?name=true|false. An absent parameter yields nil.
func BoolQuery(r *http.Request, name string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid query parameter: %s must be true or false", name)
	}
	return &v, nil
}

// LimitQuery parses ?limit=. An absent parameter yields def; values above max are clamped.
func LimitQuery(r *http.Request, def, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, errors.New("invalid query parameter: limit must be a positive integer")
	}
	if v > max {
		v = max
	}
	return v, nil
}
