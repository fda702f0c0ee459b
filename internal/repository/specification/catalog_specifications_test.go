package specification

import (
	"testing"

	"markethub-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestForProductFilter(t *testing.T) {
	store := 3

	tests := []struct {
		name   string
		filter entity.ProductFilter
		want   []Specification
	}{
		{
			name:   "empty filter only orders",
			filter: entity.ProductFilter{},
			want:   []Specification{OrderBy{Field: "id"}, Pagination{}},
		},
		{
			name:   "every constraint",
			filter: entity.ProductFilter{StoreId: &store, Category: "Audio", Query: " buds ", MinRating: 4.5, Limit: 10, Offset: 20},
			want: []Specification{
				ByStoreID{StoreID: 3},
				ByCategory{Category: "Audio"},
				NameContains{Query: "buds"},
				MinRating{Rating: 4.5},
				OrderBy{Field: "id"},
				Pagination{Limit: 10, Offset: 20},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForProductFilter(tt.filter))
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now`, escapeLike("50% off_now"))
}
