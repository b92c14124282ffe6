package services

import "math"

const (
	defaultPerPage = 10
	// MaxPerPage caps the page size a caller may request.
	MaxPerPage = 100
)

// pageBounds normalises page and perPage and returns limit and offset.
// Pages past the addressable range yield an offset beyond every record.
func pageBounds(page, perPage int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if page-1 > math.MaxInt/perPage {
		return perPage, math.MaxInt
	}
	return perPage, (page - 1) * perPage
}
