// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// DateLayout is the wire format for the calendar-date fields
// (change_date, fill_date).
const DateLayout = "2006-01-02"

// Pagination describes one page of a listing in the response envelope.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	Limit       int   `json:"limit"`
}

// NewPagination computes the page summary for a listing.
// totalPages = ceil(totalItems/limit); an empty result set has zero pages, and
// a page past the end is a valid, empty page rather than an error.
func NewPagination(page, limit int, totalItems int64) Pagination {
	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		Limit:       limit,
	}
}
