package entity

import "time"

// Comment is a reader comment on an article. Only approved comments are public.
type Comment struct {
	ID          int64
	ArticleID   int64
	AuthorName  string
	AuthorEmail string
	Content     string
	Approved    bool
	CreatedAt   time.Time
}
