package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     Page
	}{
		{"defaults", 0, 0, Page{Number: 1, Size: 10}},
		{"negative inputs", -3, -1, Page{Number: 1, Size: 10}},
		{"valid inputs", 2, 5, Page{Number: 2, Size: 5}},
		{"page one", 1, 25, Page{Number: 1, Size: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.page, tt.pageSize))
		})
	}
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, Normalize(1, 10).Offset())
	assert.Equal(t, 5, Normalize(2, 5).Offset())
	assert.Equal(t, 40, Normalize(5, 10).Offset())
}

func TestPage_TotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		pageSize   int
		want       int
	}{
		{"empty collection", 0, 10, 0},
		{"exact fit", 20, 10, 2},
		{"remainder rounds up", 15, 10, 2},
		{"fifteen by five", 15, 5, 3},
		{"single item", 1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(1, tt.pageSize)
			assert.Equal(t, tt.want, p.TotalPages(tt.totalItems))
		})
	}
}
