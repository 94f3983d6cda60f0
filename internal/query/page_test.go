package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSpec = Spec{
	DefaultPageSize: 12,
	DefaultSort:     "created_at",
	DefaultDir:      SortDesc,
	SortColumns:     []string{"created_at", "title"},
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{
			name: "zero values fall back to defaults",
			in:   PageRequest{},
			want: PageRequest{Page: 1, PageSize: 12, Sort: "created_at", SortDir: SortDesc},
		},
		{
			name: "negative page clamps to first",
			in:   PageRequest{Page: -3, PageSize: 5},
			want: PageRequest{Page: 1, PageSize: 5, Sort: "created_at", SortDir: SortDesc},
		},
		{
			name: "allowed sort column passes through",
			in:   PageRequest{Page: 2, PageSize: 10, Sort: "title", SortDir: SortAsc},
			want: PageRequest{Page: 2, PageSize: 10, Sort: "title", SortDir: SortAsc},
		},
		{
			name: "unknown sort column falls back to default",
			in:   PageRequest{Page: 1, PageSize: 10, Sort: "password", SortDir: SortAsc},
			want: PageRequest{Page: 1, PageSize: 10, Sort: "created_at", SortDir: SortAsc},
		},
		{
			name: "unknown direction falls back to default",
			in:   PageRequest{Page: 1, PageSize: 10, Sort: "title", SortDir: "sideways"},
			want: PageRequest{Page: 1, PageSize: 10, Sort: "title", SortDir: SortDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testSpec.Normalize(tt.in))
		})
	}
}

func TestNormalizeKeepsSearch(t *testing.T) {
	got := testSpec.Normalize(PageRequest{Search: "pasta"})
	assert.Equal(t, "pasta", got.Search)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, PageSize: 12}.Offset())
	assert.Equal(t, 12, PageRequest{Page: 2, PageSize: 12}.Offset())
	assert.Equal(t, 48, PageRequest{Page: 5, PageSize: 12}.Offset())
}

func TestOrderAppendsSecondaryKey(t *testing.T) {
	req := testSpec.Normalize(PageRequest{Sort: "title", SortDir: SortAsc})
	assert.Equal(t, "title asc, id asc", req.Order())

	req = testSpec.Normalize(PageRequest{})
	assert.Equal(t, "created_at desc, id desc", req.Order())
}
