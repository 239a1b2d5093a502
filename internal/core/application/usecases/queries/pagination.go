// Package queries contains read use cases. Handlers read straight from the
// database through GORM and return flat view structs; they never load
// aggregates or open a unit of work.
package queries

import (
	"fmt"
	"math"

	"restaurant/internal/pkg/errs"
)

const (
	DefaultMenuPageLimit  = 50
	DefaultOrderPageLimit = 10
	MaxPageLimit          = 100
)

// Pagination is a 1-based page request. Zero values fall back to the first page
// and the caller's default limit; limits above MaxPageLimit are capped.
type Pagination struct {
	page  int
	limit int
}

func NewPagination(page, limit, defaultLimit int) (Pagination, error) {
	if page < 0 {
		return Pagination{}, errs.NewValueIsInvalidErrorWithCause(
			"page must be a positive number", fmt.Errorf("%d is less than 1", page))
	}
	if limit < 0 {
		return Pagination{}, errs.NewValueIsInvalidErrorWithCause(
			"limit must be a positive number", fmt.Errorf("%d is less than 1", limit))
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultLimit
	}
	limit = min(limit, MaxPageLimit)
	if page-1 > math.MaxInt/limit {
		return Pagination{}, errs.NewValueIsOutOfRangeError("page", page, 1, math.MaxInt/limit+1)
	}

	return Pagination{page: page, limit: limit}, nil
}

func (p Pagination) Page() int   { return p.page }
func (p Pagination) Limit() int  { return p.limit }
func (p Pagination) Offset() int { return (p.page - 1) * p.limit }

// PageInfo describes the slice of a result set that was returned.
type PageInfo struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

func newPageInfo(total int64, p Pagination) PageInfo {
	pages := 0
	if p.limit > 0 {
		pages = int((total + int64(p.limit) - 1) / int64(p.limit))
	}
	return PageInfo{
		Total:      total,
		Page:       p.page,
		Limit:      p.limit,
		TotalPages: pages,
	}
}
