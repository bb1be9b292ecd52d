package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
const maxURLLength = 2048

// ValidateURL validates the format of a media or link URL.
// Root-relative paths ("/uploads/x.jpg") are accepted for assets served by the site itself.
// Returns a ValidationError naming field when the URL is unusable.
func ValidateURL(field, rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: field, Message: field + " is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must not exceed %d characters", field, maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: field, Message: field + " is an invalid URL"}
	}

	if parsedURL.Scheme == "" && parsedURL.Host == "" && len(parsedURL.Path) > 1 && parsedURL.Path[0] == '/' {
		return nil
	}

	// HTTPまたはHTTPSスキームのみ許可
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: field, Message: field + " must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: field, Message: field + " must have a valid host"}
	}

	return nil
}
