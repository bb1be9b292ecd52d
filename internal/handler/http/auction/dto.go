// Package auction provides HTTP handlers for auctions and bidding.
package auction

import (
	"time"

	"newsdesk/internal/domain/entity"
)

type BidDTO struct {
	ID        int64     `json:"id" example:"41"`
	AuctionID int64     `json:"auctionId" example:"3"`
	UserID    int64     `json:"userId" example:"12"`
	Amount    float64   `json:"amount" example:"125000"`
	BidTime   time.Time `json:"bidTime"`
}

// DTO represents the JSON structure for an auction. Bids is only filled by the detail route.
type DTO struct {
	ID              int64      `json:"id" example:"3"`
	Title           string     `json:"title" example:"Toyota RAV4 2019"`
	FullDescription string     `json:"fullDescription,omitempty"`
	StartingBid     float64    `json:"startingBid" example:"100000"`
	CurrentBid      float64    `json:"currentBid" example:"125000"`
	MinIncrement    float64    `json:"minIncrement" example:"5000"`
	EndTime         time.Time  `json:"endTime"`
	Images          []string   `json:"images"`
	Category        string     `json:"category,omitempty"`
	Condition       string     `json:"condition,omitempty"`
	Location        string     `json:"location,omitempty"`
	Shipping        string     `json:"shipping,omitempty"`
	Returns         string     `json:"returns,omitempty"`
	SellerID        *int64     `json:"sellerId"`
	IsFeatured      bool       `json:"isFeatured"`
	Status          string     `json:"status" example:"active"`
	TotalBids       int64      `json:"totalBids"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
	Bids            []BidDTO   `json:"bids,omitempty"`
}

func toBidDTO(b *entity.Bid) BidDTO {
	return BidDTO{ID: b.ID, AuctionID: b.AuctionID, UserID: b.UserID, Amount: b.Amount, BidTime: b.BidTime}
}

func toDTO(a *entity.Auction) DTO {
	d := DTO{
		ID:              a.ID,
		Title:           a.Title,
		FullDescription: a.FullDescription,
		StartingBid:     a.StartingBid,
		CurrentBid:      a.CurrentBid,
		MinIncrement:    a.MinIncrement,
		EndTime:         a.EndTime,
		Images:          a.Images,
		Category:        a.Category,
		Condition:       a.Condition,
		Location:        a.Location,
		Shipping:        a.Shipping,
		Returns:         a.Returns,
		SellerID:        a.SellerID,
		IsFeatured:      a.IsFeatured,
		Status:          string(a.Status),
		TotalBids:       a.TotalBids,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if d.Images == nil {
		d.Images = []string{}
	}
	for _, b := range a.Bids {
		d.Bids = append(d.Bids, toBidDTO(b))
	}
	return d
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type bidRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
}

type createRequest struct {
	Title           string    `json:"title" validate:"notblank,max=255"`
	FullDescription string    `json:"fullDescription"`
	StartingBid     float64   `json:"startingBid" validate:"gt=0"`
	MinIncrement    float64   `json:"minIncrement" validate:"gt=0"`
	EndTime         time.Time `json:"endTime" validate:"required"`
	Images          []string  `json:"images" validate:"omitempty,dive,httpurl"`
	Category        string    `json:"category" validate:"max=100"`
	Condition       string    `json:"condition" validate:"max=50"`
	Location        string    `json:"location" validate:"max=255"`
	Shipping        string    `json:"shipping"`
	Returns         string    `json:"returns"`
	IsFeatured      bool      `json:"isFeatured"`
}

// updateRequest has no currentBid or totalBids: those only move through bids.
type updateRequest struct {
	Title           *string    `json:"title"`
	FullDescription *string    `json:"fullDescription"`
	MinIncrement    *float64   `json:"minIncrement"`
	EndTime         *time.Time `json:"endTime"`
	Images          []string   `json:"images" validate:"omitempty,dive,httpurl"`
	Category        *string    `json:"category"`
	Condition       *string    `json:"condition"`
	Location        *string    `json:"location"`
	Shipping        *string    `json:"shipping"`
	Returns         *string    `json:"returns"`
	IsFeatured      *bool      `json:"isFeatured"`
	Status          *string    `json:"status"`
}
