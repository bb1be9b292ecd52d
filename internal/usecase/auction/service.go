package auction

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/repository"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	// RecentBids is how many bids the detail view carries.
	RecentBids = 10
)

type CreateInput struct {
	Title           string
	FullDescription string
	StartingBid     float64
	MinIncrement    float64
	EndTime         time.Time
	Images          []string
	Category        string
	Condition       string
	Location        string
	Shipping        string
	Returns         string
	IsFeatured      bool
}

// UpdateInput is a partial update. starting_bid, current_bid and total_bids are not editable.
type UpdateInput struct {
	ID              int64
	Title           *string
	FullDescription *string
	MinIncrement    *float64
	EndTime         *time.Time
	Images          []string
	Category        *string
	Condition       *string
	Location        *string
	Shipping        *string
	Returns         *string
	IsFeatured      *bool
	Status          *entity.AuctionStatus
}

type Service struct {
	Repo repository.AuctionRepository
	Now  func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List orders by end_time so the soonest-closing auctions come first.
func (s *Service) List(ctx context.Context, f entity.AuctionFilter) ([]*entity.Auction, error) {
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultListLimit
	case f.Limit > MaxListLimit:
		f.Limit = MaxListLimit
	}
	if f.Status != "" && f.Status != entity.AuctionActive && f.Status != entity.AuctionEnded {
		return nil, entity.FieldError("status", "status must be active or ended")
	}
	list, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return list, nil
}

// Get returns the auction with its most recent bids, newest first.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Auction, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	bids, err := s.Repo.RecentBids(ctx, id, RecentBids)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	a.Bids = bids
	return a, nil
}

func (s *Service) find(ctx context.Context, id int64) (*entity.Auction, error) {
	if id <= 0 {
		return nil, ErrInvalidAuctionID
	}
	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get auction: %w", err)
	}
	if a == nil {
		return nil, ErrAuctionNotFound
	}
	return a, nil
}

// validAmount requires at least one cent after rounding to the column scale.
func validAmount(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v) && entity.Cents(v) > 0
}

// Bid places amount on the auction for userID. The floor check runs against the
// row locked inside the repository transaction.
func (s *Service) Bid(ctx context.Context, auctionID, userID int64, amount float64) (*entity.Bid, error) {
	if auctionID <= 0 {
		return nil, ErrInvalidAuctionID
	}
	if !validAmount(amount) {
		return nil, entity.FieldError("amount", "amount must be greater than 0")
	}
	amount = entity.RoundCents(amount)
	now := s.now()
	bid := &entity.Bid{AuctionID: auctionID, UserID: userID, Amount: amount, BidTime: now}

	err := s.Repo.PlaceBid(ctx, bid, func(a *entity.Auction) error {
		return a.AcceptBid(amount, now)
	})
	switch {
	case err == nil:
		metrics.RecordBid("accepted")
		return bid, nil
	case errors.Is(err, entity.ErrNotFound):
		return nil, ErrAuctionNotFound
	case errors.Is(err, entity.ErrAuctionClosed):
		metrics.RecordBid("closed")
		return nil, err
	case errors.Is(err, entity.ErrBidTooLow):
		metrics.RecordBid("too_low")
		return nil, err
	}
	return nil, fmt.Errorf("place bid: %w", err)
}

// Create opens an auction for sellerID. current_bid starts at starting_bid.
func (s *Service) Create(ctx context.Context, in CreateInput, sellerID int64) (*entity.Auction, error) {
	fields := entity.ValidationErrors{}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "title is required"
	}
	if !validAmount(in.StartingBid) {
		fields["startingBid"] = "startingBid must be greater than 0"
	}
	if !validAmount(in.MinIncrement) {
		fields["minIncrement"] = "minIncrement must be greater than 0"
	}
	if in.EndTime.IsZero() {
		fields["endTime"] = "endTime is required"
	} else if !in.EndTime.After(s.now()) {
		fields["endTime"] = "endTime must be in the future"
	}
	if len(fields) > 0 {
		return nil, fields
	}

	a := &entity.Auction{
		Title:           strings.TrimSpace(in.Title),
		FullDescription: in.FullDescription,
		StartingBid:     entity.RoundCents(in.StartingBid),
		CurrentBid:      entity.RoundCents(in.StartingBid),
		MinIncrement:    entity.RoundCents(in.MinIncrement),
		EndTime:         in.EndTime,
		Images:          in.Images,
		Category:        in.Category,
		Condition:       in.Condition,
		Location:        in.Location,
		Shipping:        in.Shipping,
		Returns:         in.Returns,
		IsFeatured:      in.IsFeatured,
		Status:          entity.AuctionActive,
	}
	if sellerID > 0 {
		a.SellerID = &sellerID
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create auction: %w", err)
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Auction, error) {
	a, err := s.find(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	fields := entity.ValidationErrors{}
	if in.Title != nil {
		if t := strings.TrimSpace(*in.Title); t == "" {
			fields["title"] = "title cannot be empty"
		} else {
			a.Title = t
		}
	}
	if in.MinIncrement != nil {
		if !validAmount(*in.MinIncrement) {
			fields["minIncrement"] = "minIncrement must be greater than 0"
		} else {
			a.MinIncrement = entity.RoundCents(*in.MinIncrement)
		}
	}
	if in.Status != nil {
		if *in.Status != entity.AuctionActive && *in.Status != entity.AuctionEnded {
			fields["status"] = "status must be active or ended"
		} else {
			a.Status = *in.Status
		}
	}
	if len(fields) > 0 {
		return nil, fields
	}

	if in.FullDescription != nil {
		a.FullDescription = *in.FullDescription
	}
	if in.EndTime != nil {
		a.EndTime = *in.EndTime
	}
	if in.Images != nil {
		a.Images = in.Images
	}
	if in.Category != nil {
		a.Category = *in.Category
	}
	if in.Condition != nil {
		a.Condition = *in.Condition
	}
	if in.Location != nil {
		a.Location = *in.Location
	}
	if in.Shipping != nil {
		a.Shipping = *in.Shipping
	}
	if in.Returns != nil {
		a.Returns = *in.Returns
	}
	if in.IsFeatured != nil {
		a.IsFeatured = *in.IsFeatured
	}

	if err := s.Repo.Update(ctx, a); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrAuctionNotFound
		}
		return nil, fmt.Errorf("update auction: %w", err)
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAuctionID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrAuctionNotFound
		}
		return fmt.Errorf("delete auction: %w", err)
	}
	return nil
}

// CloseExpired ends every active auction whose end_time has passed.
func (s *Service) CloseExpired(ctx context.Context) (int64, error) {
	start := time.Now()
	n, err := s.Repo.CloseExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("close expired auctions: %w", err)
	}
	metrics.RecordAuctionClose(n, time.Since(start))
	return n, nil
}
