// Package service contains business logic between HTTP handlers and repositories.
package service

// Pagination defaults and bounds shared by every listing endpoint.
const (
	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 100
)

// Page is a normalized pagination request. Pages are 1-indexed.
type Page struct {
	Number int
	Limit  int
}

// NormalizePage clamps raw pagination values into the supported range.
// Non-positive or absurd values fall back to the defaults instead of erroring.
func NormalizePage(number, limit int) Page {
	if number < 1 {
		number = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Number: number, Limit: limit}
}

// Offset converts the 1-indexed page into a row offset.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// TotalPages returns the ceiling of total/limit. An empty listing has zero
// pages; a request past the last page still reports the true page count.
func (p Page) TotalPages(total int64) int {
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
