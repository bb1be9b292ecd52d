package entity

import "time"

// Advertisement is a job or classified listing.
type Advertisement struct {
	ID              int64
	Title           string
	FullDescription string
	Company         string
	Category        string
	ImageURL        string
	Location        string
	Deadline        *time.Time
	ContactPhone    string
	ContactEmail    string
	ContactWebsite  string
	ContactAddress  string
	Requirements    []string
	Benefits        []string
	IsActive        bool
	IsFeatured      bool
	Views           int64
	Applicants      int64
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// AdvertisementFilter narrows advertisement listings.
type AdvertisementFilter struct {
	Category string
	Featured *bool
	Active   *bool
	Search   string
	Limit    int
	Offset   int
}
