package entity

import "time"

// AdPosition is the placement slot of a display ad.
type AdPosition string

const (
	PositionHomepageTop AdPosition = "homepage_top"
	PositionSidebar     AdPosition = "sidebar"
	PositionInline      AdPosition = "inline"
	PositionHeader      AdPosition = "header"
	PositionFooter      AdPosition = "footer"
)

// Valid reports whether p is a known slot.
func (p AdPosition) Valid() bool {
	switch p {
	case PositionHomepageTop, PositionSidebar, PositionInline, PositionHeader, PositionFooter:
		return true
	}
	return false
}

// Ad is a display banner. Clicks and Impressions only ever grow.
type Ad struct {
	ID          int64
	Title       string
	ImageURL    string
	LinkURL     string
	Position    AdPosition
	IsActive    bool
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedBy   *int64
	Clicks      int64
	Impressions int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Running reports whether the ad should be served at t.
func (a *Ad) Running(t time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.StartDate != nil && t.Before(*a.StartDate) {
		return false
	}
	if a.EndDate != nil && t.After(*a.EndDate) {
		return false
	}
	return true
}

// AdFilter narrows ad listings.
type AdFilter struct {
	Position AdPosition
	IsActive *bool
	// Current restricts to ads running at this instant.
	Current *time.Time
}
