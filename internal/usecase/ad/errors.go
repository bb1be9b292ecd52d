// Package ad manages display ads and their click/impression counters.
package ad

import "errors"

var (
	ErrAdNotFound  = errors.New("ad not found")
	ErrInvalidAdID = errors.New("invalid ad ID")
)
