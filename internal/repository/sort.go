// Package repository provides data access layer implementations for the application.
package repository

import (
	"fmt"
)

// SortField enumerates the columns a listing may be ordered by.
type SortField string

// SortOrder enumerates listing directions.
type SortOrder string

const (
	SortByPoints    SortField = "points"
	SortByCreatedAt SortField = "createdAt"

	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort is a validated (field, order) pair. The zero value is not meaningful;
// use ParseSort or DefaultSort.
type Sort struct {
	By    SortField
	Order SortOrder
}

// DefaultSort orders newest first.
func DefaultSort() Sort {
	return Sort{By: SortByCreatedAt, Order: SortDesc}
}

// ParseSort maps raw query values onto the enumerated sort set. Unrecognized
// values fall back to the defaults rather than erroring.
func ParseSort(by, order string) Sort {
	s := DefaultSort()
	switch SortField(by) {
	case SortByPoints:
		s.By = SortByPoints
	case SortByCreatedAt:
		s.By = SortByCreatedAt
	}
	switch SortOrder(order) {
	case SortAsc:
		s.Order = SortAsc
	case SortDesc:
		s.Order = SortDesc
	}
	return s
}

// Clause renders the ORDER BY expression for the given table. A secondary id
// ordering in the same direction keeps pagination stable when the primary
// key ties.
func (s Sort) Clause(table string) string {
	col := "created_at"
	if s.By == SortByPoints {
		col = "points"
	}
	dir := "DESC"
	if s.Order == SortAsc {
		dir = "ASC"
	}
	return fmt.Sprintf("%s.%s %s, %s.id %s", table, col, dir, table, dir)
}
