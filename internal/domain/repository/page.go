package repository

// PageRequest describes the slice of a scoped listing to fetch. Both values are
// validated by the delivery layer before they reach a repository: page >= 1 and
// limit within [1,100].
type PageRequest struct {
	Page  int
	Limit int
}

// Offset computes the row offset for the request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// VehicleFilter carries the optional free-text search for vehicle listings.
// An empty Search disables filtering entirely.
type VehicleFilter struct {
	Search string
}
