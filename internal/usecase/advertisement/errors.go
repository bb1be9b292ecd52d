// Package advertisement manages job and classified listings.
package advertisement

import "errors"

var (
	ErrAdvertisementNotFound  = errors.New("advertisement not found")
	ErrInvalidAdvertisementID = errors.New("invalid advertisement ID")
)
