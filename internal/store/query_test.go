package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        *ProductQuery
		wantContains []string
		wantArgs     []any
	}{
		{
			name:         "no filters uses defaults",
			query:        &ProductQuery{},
			wantContains: []string{"ORDER BY name", "LIMIT 50", "OFFSET 0"},
			wantArgs:     nil,
		},
		{
			name:         "name filter uses ILIKE",
			query:        &ProductQuery{NameLike: "widget"},
			wantContains: []string{"name ILIKE $1"},
			wantArgs:     []any{"%widget%"},
		},
		{
			name:         "category and brand combine with AND",
			query:        &ProductQuery{Category: "electronics", Brand: "Acme"},
			wantContains: []string{"category = $1", "AND", "brand = $2"},
			wantArgs:     []any{"electronics", "Acme"},
		},
		{
			name:         "all filters in order",
			query:        &ProductQuery{NameLike: "wid", Category: "electronics", Brand: "Acme"},
			wantContains: []string{"name ILIKE $1", "category = $2", "brand = $3"},
			wantArgs:     []any{"%wid%", "electronics", "Acme"},
		},
		{
			name:         "limit is capped",
			query:        &ProductQuery{Limit: 10000},
			wantContains: []string{"LIMIT 500"},
			wantArgs:     nil,
		},
		{
			name:         "negative offset clamps to zero",
			query:        &ProductQuery{Offset: -5},
			wantContains: []string{"OFFSET 0"},
			wantArgs:     nil,
		},
		{
			name:         "custom limit and offset pass through",
			query:        &ProductQuery{Limit: 20, Offset: 40},
			wantContains: []string{"LIMIT 20", "OFFSET 40"},
			wantArgs:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, want := range tt.wantContains {
				assert.Contains(t, dataSQL, want)
			}
			assert.Equal(t, tt.wantArgs, args)

			// The count query carries the same filters but no paging.
			assert.NotContains(t, countSQL, "LIMIT")
			assert.NotContains(t, countSQL, "OFFSET")
			if strings.Contains(dataSQL, "WHERE") {
				assert.Contains(t, countSQL, "WHERE")
			}
		})
	}
}
