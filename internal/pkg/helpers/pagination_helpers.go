package helpers

import (
	"math"

	"github.com/yigit/campusregistry/internal/app/models"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // Default page is 1-based
)

// NormalizePagination clamps page and size to usable values
func NormalizePagination(page, size int) (int, int) {
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	return page, size
}

// NewPaginationInfo creates a standard PageInfo.
// page should be the 1-based page number.
func NewPaginationInfo(totalItems int64, page, size int) models.PageInfo {
	page, size = NormalizePagination(page, size)

	// Calculate total pages based on total items
	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	} else if page == 1 {
		totalPages = 1
	}

	// Ensure currentPage never exceeds totalPages
	currentPage := page
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	return models.PageInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

// CalculateSliceIndices calculates the start and end indices for slicing an array for pagination
func CalculateSliceIndices(page, size, totalItems int) (start, end int) {
	page, size = NormalizePagination(page, size)
	if totalItems <= 0 {
		return 0, 0
	}

	// Checked before multiplying so a huge page cannot overflow the offset
	if page-1 > totalItems/size {
		return totalItems, totalItems
	}

	start = (page - 1) * size
	if start >= totalItems {
		return totalItems, totalItems
	}
	end = start + size
	if end > totalItems {
		end = totalItems
	}

	return start, end
}
