// Package auction implements listing, bidding and closing of auctions.
package auction

import (
	"errors"

	"newsdesk/internal/domain/entity"
)

var (
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrInvalidAuctionID = errors.New("invalid auction ID")

	// ErrAuctionNotActive and ErrBidTooLow alias the domain errors so handlers
	// only import this package.
	ErrAuctionNotActive = entity.ErrAuctionClosed
	ErrBidTooLow        = entity.ErrBidTooLow
)
