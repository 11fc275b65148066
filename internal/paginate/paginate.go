// Package paginate slices a collection into fixed-size pages and builds the
// compressed page-index sequence shown by pagination controls.
package paginate

import "strconv"

// Ellipsis is the marker rendered for a gap in the compressed page range.
const Ellipsis = "..."

// Page is one window into a collection.
type Page[T any] struct {
	Items      []T
	Current    int
	TotalPages int
	TotalItems int
}

// Slice returns the currentPage-th window of pageSize items, clipped to
// bounds. TotalPages is ceil(count/pageSize); an empty collection has zero
// pages. The input slice is only re-sliced, never copied or modified.
func Slice[T any](items []T, pageSize, currentPage int) Page[T] {
	page := Page[T]{
		Current:    currentPage,
		TotalItems: len(items),
	}
	if pageSize <= 0 {
		return page
	}
	page.TotalPages = (len(items) + pageSize - 1) / pageSize

	start := (currentPage - 1) * pageSize
	if start < 0 || start >= len(items) {
		return page
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	page.Items = items[start:end]
	return page
}

// Entry is one element of a compressed page range: a page number, or an
// ellipsis standing in for a gap.
type Entry struct {
	Page     int
	Ellipsis bool
}

func (e Entry) String() string {
	if e.Ellipsis {
		return Ellipsis
	}
	return strconv.Itoa(e.Page)
}

// CompressedRange abbreviates a page list into the canonical
// "1 ... 4 5 6 ... 20" pattern: always page 1, a window of interior pages
// around the current one (widened near either edge), and always the last
// page when there is more than one.
func CompressedRange(currentPage, totalPages int) []Entry {
	if totalPages <= 0 {
		return nil
	}

	entries := []Entry{{Page: 1}}

	if currentPage > 3 {
		entries = append(entries, Entry{Ellipsis: true})
	}

	start := max(2, currentPage-1)
	end := min(totalPages-1, currentPage+1)
	if currentPage <= 3 {
		end = min(4, totalPages-1)
	}
	if currentPage >= totalPages-2 {
		start = max(totalPages-3, 2)
	}

	for i := start; i <= end; i++ {
		if i > 1 && i < totalPages {
			entries = append(entries, Entry{Page: i})
		}
	}

	if currentPage < totalPages-2 {
		entries = append(entries, Entry{Ellipsis: true})
	}

	if totalPages > 1 {
		entries = append(entries, Entry{Page: totalPages})
	}

	return entries
}
