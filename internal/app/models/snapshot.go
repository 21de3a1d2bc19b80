package models

import "time"

// Snapshot is a point-in-time copy of the whole registry
type Snapshot struct {
	ID       string     `json:"id" yaml:"id"`
	TakenAt  time.Time  `json:"takenAt" yaml:"takenAt"`
	Students []*Student `json:"students" yaml:"students"`
	Classes  []*Class   `json:"classes" yaml:"classes"`
	Courses  []*Course  `json:"courses" yaml:"courses"`
	Clubs    []*Club    `json:"clubs" yaml:"clubs"`
}

// PageInfo describes one page of a list result
type PageInfo struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}
