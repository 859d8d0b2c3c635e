package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantHasNxt bool
		wantHasPrv bool
	}{
		{"halaman pertama penuh", 95, 1, 20, 5, true, false},
		{"halaman tengah", 95, 3, 20, 5, true, true},
		{"halaman terakhir", 95, 5, 20, 5, false, true},
		{"total nol tetap 1 halaman", 0, 1, 20, 1, false, false},
		{"pas kelipatan per_page", 40, 2, 20, 2, false, true},
		{"per_page cacat pakai default", 10, 1, 0, 1, false, false},
		{"page cacat dinormalisasi", 10, -3, 20, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantHasNxt, p.HasNext)
			assert.Equal(t, tt.wantHasPrv, p.HasPrev)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(404))
	assert.Equal(t, "CONFLICT", statusToErrorCode(409))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(422))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(500))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}
