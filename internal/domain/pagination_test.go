package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		params     PaginationParams
		total      int
		wantOffset int
		wantPages  int
	}{
		{name: "first page", params: PaginationParams{Page: 1, PageSize: 20}, total: 41, wantOffset: 0, wantPages: 3},
		{name: "third page", params: PaginationParams{Page: 3, PageSize: 20}, total: 41, wantOffset: 40, wantPages: 3},
		{name: "exact fit", params: PaginationParams{Page: 2, PageSize: 10}, total: 20, wantOffset: 10, wantPages: 2},
		{name: "page below one", params: PaginationParams{Page: 0, PageSize: 10}, total: 5, wantOffset: 0, wantPages: 1},
		{name: "unpaged", params: PaginationParams{}, total: 7, wantOffset: 0, wantPages: 1},
		{name: "empty", params: PaginationParams{Page: 1, PageSize: 10}, total: 0, wantOffset: 0, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.params.Offset())
			assert.Equal(t, tt.wantPages, tt.params.TotalPages(tt.total))
		})
	}
}
