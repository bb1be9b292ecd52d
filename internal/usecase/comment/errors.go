// Package comment handles reader comments and their moderation queue.
package comment

import "errors"

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrInvalidCommentID = errors.New("invalid comment ID")
	ErrArticleNotFound  = errors.New("article not found")
)
