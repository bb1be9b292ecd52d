package repository

import (
	"context"
	"time"

	"newsdesk/internal/domain/entity"
)

// BidFunc inspects the locked auction row and returns an error to abort the bid.
type BidFunc func(auction *entity.Auction) error

// AuctionRepository persists auctions and their bids.
type AuctionRepository interface {
	// List orders by end_time ASC.
	List(ctx context.Context, filter entity.AuctionFilter) ([]*entity.Auction, error)
	Get(ctx context.Context, id int64) (*entity.Auction, error)
	// RecentBids returns up to limit bids, newest first.
	RecentBids(ctx context.Context, auctionID int64, limit int) ([]*entity.Bid, error)
	Create(ctx context.Context, auction *entity.Auction) error
	Update(ctx context.Context, auction *entity.Auction) error
	Delete(ctx context.Context, id int64) error
	// PlaceBid locks the auction row, runs check against the locked state and, when it
	// passes, inserts bid and raises current_bid / total_bids in the same transaction.
	// A missing auction yields entity.ErrNotFound.
	PlaceBid(ctx context.Context, bid *entity.Bid, check BidFunc) error
	// CloseExpired flips active auctions whose end_time <= now to ended.
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
