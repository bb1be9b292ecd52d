package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain/entity"
)

type sample struct {
	Title    string  `json:"title" validate:"notblank,max=10"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Image    string  `json:"imageUrl" validate:"omitempty,httpurl"`
	Status   string  `json:"status" validate:"omitempty,article_status"`
	Position string  `json:"position" validate:"omitempty,ad_position"`
	Role     string  `json:"role" validate:"omitempty,user_role"`
	Amount   float64 `json:"amount" validate:"gt=0"`
	Category *int64  `json:"categoryId" validate:"required"`
}

func validSample() sample {
	id := int64(1)
	return sample{Title: "ok", Amount: 1, Category: &id}
}

func TestStruct_Valid(t *testing.T) {
	s := validSample()
	s.Email = "editor@example.rw"
	s.Image = "https://cdn.example.com/x.png"
	s.Status = "published"
	s.Position = "sidebar"
	s.Role = "editor"

	assert.NoError(t, Struct(s))
}

func TestStruct_FieldMessages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sample)
		field  string
		want   string
	}{
		{name: "blank title", mutate: func(s *sample) { s.Title = "   " }, field: "title", want: "title is required"},
		{name: "long title", mutate: func(s *sample) { s.Title = "abcdefghijk" }, field: "title", want: "title must be at most 10 characters long"},
		{name: "bad email", mutate: func(s *sample) { s.Email = "nope" }, field: "email", want: "email must be a valid email address"},
		{name: "bad url", mutate: func(s *sample) { s.Image = "ftp://x" }, field: "imageUrl", want: "imageUrl must be a valid http(s) URL"},
		{name: "bad status", mutate: func(s *sample) { s.Status = "archived" }, field: "status", want: "status must be draft or published"},
		{name: "bad position", mutate: func(s *sample) { s.Position = "popup" }, field: "position", want: "position must be one of homepage_top, sidebar, inline, header, footer"},
		{name: "bad role", mutate: func(s *sample) { s.Role = "root" }, field: "role", want: "role must be admin, editor or author"},
		{name: "zero amount", mutate: func(s *sample) { s.Amount = 0 }, field: "amount", want: "amount must be greater than 0"},
		{name: "nil category", mutate: func(s *sample) { s.Category = nil }, field: "categoryId", want: "categoryId is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSample()
			tt.mutate(&s)

			err := Struct(s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, entity.ErrValidationFailed))

			var fields entity.ValidationErrors
			require.True(t, errors.As(err, &fields))
			assert.Equal(t, tt.want, fields[tt.field])
		})
	}
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("admin@impara.rw"))
	assert.False(t, Email("admin@"))
	assert.False(t, Email(""))
}
