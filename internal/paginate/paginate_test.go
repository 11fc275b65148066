package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestSlice(t *testing.T) {
	items := sequence(25)

	tests := []struct {
		name       string
		pageSize   int
		current    int
		totalPages int
		first      int
		count      int
	}{
		{"first page", 10, 1, 3, 1, 10},
		{"middle page", 10, 2, 3, 11, 10},
		{"short last page", 10, 3, 3, 21, 5},
		{"exact division", 5, 5, 5, 21, 5},
		{"page beyond range is empty", 10, 4, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Slice(items, tt.pageSize, tt.current)
			assert.Equal(t, tt.totalPages, page.TotalPages)
			assert.Equal(t, 25, page.TotalItems)
			require.Len(t, page.Items, tt.count)
			if tt.count > 0 {
				assert.Equal(t, tt.first, page.Items[0])
			}
		})
	}
}

func TestSlice_EmptyCollection(t *testing.T) {
	page := Slice([]int{}, 10, 1)
	assert.Zero(t, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestSlice_ConcatenationReconstructsInput(t *testing.T) {
	items := sequence(23)

	var rebuilt []int
	total := Slice(items, 7, 1).TotalPages
	for p := 1; p <= total; p++ {
		rebuilt = append(rebuilt, Slice(items, 7, p).Items...)
	}
	assert.Equal(t, items, rebuilt)
}

func entryStrings(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.String())
	}
	return out
}

func TestCompressedRange(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		totalPages int
		expected   []string
	}{
		{"no pages", 1, 0, nil},
		{"single page", 1, 1, []string{"1"}},
		{"two pages", 1, 2, []string{"1", "2"}},
		{"three pages", 2, 3, []string{"1", "2", "3"}},
		{"first of ten", 1, 10, []string{"1", "2", "3", "4", "...", "10"}},
		{"second of ten", 2, 10, []string{"1", "2", "3", "4", "...", "10"}},
		{"third of ten", 3, 10, []string{"1", "2", "3", "4", "...", "10"}},
		{"middle of ten", 5, 10, []string{"1", "...", "4", "5", "6", "...", "10"}},
		{"near end of ten", 8, 10, []string{"1", "...", "7", "8", "9", "10"}},
		{"last of ten", 10, 10, []string{"1", "...", "7", "8", "9", "10"}},
		{"first of twenty", 1, 20, []string{"1", "2", "3", "4", "...", "20"}},
		{"middle of twenty", 10, 20, []string{"1", "...", "9", "10", "11", "...", "20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompressedRange(tt.current, tt.totalPages)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.expected, entryStrings(got))
		})
	}
}

func TestCompressedRange_NoDuplicateLastPage(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for current := 1; current <= total; current++ {
			entries := CompressedRange(current, total)
			seen := map[int]bool{}
			for _, e := range entries {
				if e.Ellipsis {
					continue
				}
				assert.False(t, seen[e.Page], "page %d duplicated for current=%d total=%d", e.Page, current, total)
				seen[e.Page] = true
			}
			assert.True(t, seen[1])
			assert.True(t, seen[total])
		}
	}
}
