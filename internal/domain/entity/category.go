package entity

import "time"

// Category groups articles. NameRw is the Kinyarwanda label.
type Category struct {
	ID           int64
	Name         string
	NameRw       string
	Slug         string
	Description  string
	Icon         string
	DisplayOrder int
	Active       bool
	CreatedAt    time.Time
}
