// Package admin implements the maintenance command set. It works through the
// same repositories as the HTTP API.
package admin

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown snapshot format: use .json, .yaml or .yml")
	ErrNoArticleIDs  = errors.New("at least one article id is required")
)
