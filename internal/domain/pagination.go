package domain

// PaginationParams holds offset-based pagination parameters for list queries.
// A zero PageSize asks for every row.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Paged reports whether the listing should be limited to one page.
func (p PaginationParams) Paged() bool { return p.PageSize > 0 }

// Offset returns the row offset for the current page (0-based).
func (p PaginationParams) Offset() int {
	if p.Page < 1 || !p.Paged() {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// TotalPages returns how many pages total rows span; an unpaged listing is one page.
func (p PaginationParams) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	if !p.Paged() {
		return 1
	}
	return (total + p.PageSize - 1) / p.PageSize
}
