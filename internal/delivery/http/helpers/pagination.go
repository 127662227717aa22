package helpers

import (
	"net/http"
	"strconv"

	"festx/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the query string. Missing or
// non-positive values fall back to the defaults; page_size is capped at MaxPageSize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     positiveInt(q.Get("page"), DefaultPage),
		PageSize: min(positiveInt(q.Get("page_size"), DefaultPageSize), MaxPageSize),
	}
}

func positiveInt(s string, fallback int) int {
	if v, err := strconv.Atoi(s); err == nil && v >= 1 {
		return v
	}
	return fallback
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta describes the page params selected out of total rows.
func NewPaginationMeta(params domain.PaginationParams, total int) PaginationMeta {
	return PaginationMeta{
		Page:       params.Page,
		PageSize:   params.PageSize,
		Total:      total,
		TotalPages: params.TotalPages(total),
	}
}
