package pagination

import (
	"fmt"

	"gorm.io/gorm"

	apperrors "book-hub/pkg/common/errors"
)

const MaxLimit = 100

// Page is an offset/limit window over a filtered result set.
type Page struct {
	Skip  int
	Limit int
}

// New validates the window. A zero limit is legal and yields an empty page.
func New(skip, limit int) (Page, error) {
	if skip < 0 {
		return Page{}, apperrors.NewValidation(fmt.Sprintf("skip must be >= 0, got %d", skip))
	}
	if limit < 0 || limit > MaxLimit {
		return Page{}, apperrors.NewValidation(fmt.Sprintf("limit must be between 0 and %d, got %d", MaxLimit, limit))
	}
	return Page{Skip: skip, Limit: limit}, nil
}

// Scope applies the window to a query. Counting must happen before Scope.
func (p Page) Scope(db *gorm.DB) *gorm.DB {
	if p.Skip > 0 {
		db = db.Offset(p.Skip)
	}
	return db.Limit(p.Limit)
}

// Result is the shared shape of every list response.
type Result[T any] struct {
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}

// Map projects the items of a result, keeping the total.
func Map[S, T any](in Result[S], fn func(S) T) Result[T] {
	out := Result[T]{Total: in.Total, Items: make([]T, 0, len(in.Items))}
	for _, item := range in.Items {
		out.Items = append(out.Items, fn(item))
	}
	return out
}
