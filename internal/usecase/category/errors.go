// Package category manages the bilingual section list articles are filed under.
package category

import "errors"

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidCategoryID = errors.New("invalid category ID")
	// ErrDuplicateCategory covers both name and slug collisions.
	ErrDuplicateCategory = errors.New("category with this name or slug already exists")
)
