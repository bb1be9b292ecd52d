package entity

import (
	"errors"
	"math"
	"time"
)

// AuctionStatus is either active or ended.
type AuctionStatus string

const (
	AuctionActive AuctionStatus = "active"
	AuctionEnded  AuctionStatus = "ended"
)

var (
	// ErrAuctionClosed is returned for bids on ended or expired auctions.
	ErrAuctionClosed = errors.New("auction is not active")

	// ErrBidTooLow is returned when a bid is under the bid floor.
	ErrBidTooLow = errors.New("bid too low")
)

// Auction is a timed listing that accepts increasing bids.
type Auction struct {
	ID              int64
	Title           string
	FullDescription string
	StartingBid     float64
	CurrentBid      float64
	MinIncrement    float64
	EndTime         time.Time
	Images          []string
	Category        string
	Condition       string
	Location        string
	Shipping        string
	Returns         string
	SellerID        *int64
	IsFeatured      bool
	Status          AuctionStatus
	TotalBids       int64
	CreatedAt       time.Time
	UpdatedAt       *time.Time

	Bids []*Bid
}

// Cents converts a NUMERIC(14,2) money value to whole cents.
func Cents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// RoundCents rounds v to the two decimals the money columns store.
func RoundCents(v float64) float64 {
	return float64(Cents(v)) / 100
}

func (a *Auction) floorCents() int64 {
	return Cents(a.CurrentBid) + Cents(a.MinIncrement)
}

// BidFloor is the minimum acceptable next bid.
func (a *Auction) BidFloor() float64 {
	return float64(a.floorCents()) / 100
}

// AcceptBid checks amount against the auction state at now.
// It must be called on a row read inside the bidding transaction.
func (a *Auction) AcceptBid(amount float64, now time.Time) error {
	if a.Status != AuctionActive || !now.Before(a.EndTime) {
		return ErrAuctionClosed
	}
	// 金額は float の和ではなくセント単位の整数で比較する
	if Cents(amount) < a.floorCents() {
		return ErrBidTooLow
	}
	return nil
}

// Bid is one accepted offer on an auction.
type Bid struct {
	ID        int64
	AuctionID int64
	UserID    int64
	Amount    float64
	BidTime   time.Time
}

// AuctionFilter narrows auction listings.
type AuctionFilter struct {
	Status   AuctionStatus
	Category string
	Limit    int
}
