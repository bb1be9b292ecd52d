// Package validate wraps go-playground/validator so request DTOs can declare their rules
// as struct tags and handlers get field-level messages keyed by JSON name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"newsdesk/internal/domain/entity"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Default returns the shared validator with custom rules registered.
func Default() *validator.Validate {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// New creates a validator that reports JSON field names and knows the
// newsroom-specific tags (notblank, httpurl, article_status, ad_position, user_role).
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidators(v)
	return v
}

// Struct validates s and converts failures to entity.ValidationErrors.
func Struct(s any) error {
	err := Default().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	return toFieldErrors(verrs)
}

// Email reports whether s is a syntactically valid address.
func Email(s string) bool {
	return Default().Var(s, "required,email") == nil
}

func toFieldErrors(errs validator.ValidationErrors) entity.ValidationErrors {
	out := make(entity.ValidationErrors, len(errs))
	for _, err := range errs {
		field := err.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(field, err)
	}
	return out
}

func message(field string, err validator.FieldError) string {
	switch err.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, err.Param())
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, err.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, err.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, err.Param())
	case "httpurl":
		return fmt.Sprintf("%s must be a valid http(s) URL", field)
	case "article_status":
		return fmt.Sprintf("%s must be draft or published", field)
	case "ad_position":
		return fmt.Sprintf("%s must be one of homepage_top, sidebar, inline, header, footer", field)
	case "user_role":
		return fmt.Sprintf("%s must be admin, editor or author", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func registerCustomValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// 空文字は omitempty 側で扱う
	_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return entity.ValidateURL(fl.FieldName(), fl.Field().String()) == nil
	})

	_ = v.RegisterValidation("article_status", func(fl validator.FieldLevel) bool {
		return entity.ArticleStatus(fl.Field().String()).Valid()
	})

	_ = v.RegisterValidation("ad_position", func(fl validator.FieldLevel) bool {
		return entity.AdPosition(fl.Field().String()).Valid()
	})

	_ = v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).Valid()
	})
}
