package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

func TestMatchFilter(t *testing.T) {
	meta := domain.Metadata{
		"author":    "ann",
		"year":      "2021",
		"list:tags": []string{"go", "search"},
	}

	tests := []struct {
		name   string
		filter domain.Filter
		want   bool
	}{
		{"empty filter", domain.Filter{}, true},
		{"bare value", domain.Filter{"author": "ann"}, true},
		{"eq mismatch", domain.Filter{"author": map[string]any{"$eq": "bob"}}, false},
		{"range", domain.Filter{"year": map[string]any{"$gte": "2020", "$lt": "2022"}}, true},
		{"range miss", domain.Filter{"year": map[string]any{"$gt": "2021"}}, false},
		{"missing equals null", domain.Filter{"editor": map[string]any{"$eq": nil}}, true},
		{"present is not null", domain.Filter{"author": map[string]any{"$ne": nil}}, true},
		{"missing never orders", domain.Filter{"editor": map[string]any{"$lt": "z"}}, false},
		{"missing ne string", domain.Filter{"editor": map[string]any{"$ne": "ann"}}, true},
		{"in list", domain.Filter{"list:tags": map[string]any{"$in": []any{"rust", "go"}}}, true},
		{"nin list", domain.Filter{"list:tags": map[string]any{"$nin": "go"}}, false},
		{"in on missing list", domain.Filter{"list:other": map[string]any{"$in": "go"}}, false},
		{"and", domain.Filter{"$and": []any{
			map[string]any{"author": "ann"},
			map[string]any{"year": "2021"},
		}}, true},
		{"and short circuits", domain.Filter{"$and": []any{
			map[string]any{"author": "bob"},
			map[string]any{"year": "2021"},
		}}, false},
		{"or", domain.Filter{"$or": []any{
			map[string]any{"author": "bob"},
			map[string]any{"year": "2021"},
		}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matchFilter(tt.filter, meta)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchFilter_Invalid(t *testing.T) {
	meta := domain.Metadata{"author": "ann"}

	tests := []struct {
		name   string
		filter domain.Filter
	}{
		{"unknown top-level operator", domain.Filter{"$not": map[string]any{}}},
		{"unknown field operator", domain.Filter{"author": map[string]any{"$regex": "a"}}},
		{"in on scalar attribute", domain.Filter{"author": map[string]any{"$in": "ann"}}},
		{"eq on list attribute", domain.Filter{"list:tags": map[string]any{"$eq": "go"}}},
		{"non-string operand", domain.Filter{"author": map[string]any{"$eq": 3.0}}},
		{"or without list", domain.Filter{"$or": map[string]any{"author": "ann"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := matchFilter(tt.filter, meta)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
