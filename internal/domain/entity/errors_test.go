package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "simple validation error",
			field:    "email",
			message:  "invalid format",
			expected: "validation error on field 'email': invalid format",
		},
		{
			name:     "required field error",
			field:    "title",
			message:  "required",
			expected: "validation error on field 'title': required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		"title":   "title is required",
		"content": "content is required",
	}

	// フィールド名順で安定した出力になる
	assert.Equal(t, "content is required; title is required", errs.Error())
	assert.True(t, errors.Is(errs, ErrValidationFailed))

	wrapped := fmt.Errorf("create: %w", errs)
	var got ValidationErrors
	assert.True(t, errors.As(wrapped, &got))
	assert.Equal(t, "title is required", got.Fields()["title"])
}

func TestFieldError(t *testing.T) {
	err := FieldError("amount", "amount must be positive")
	assert.Len(t, err, 1)
	assert.Equal(t, "amount must be positive", err.Error())
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrInvalidInput, ErrValidationFailed, ErrConflict}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}
