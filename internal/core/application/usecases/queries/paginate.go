package queries

// Paginate returns the 1-based page window of items.
// Pages beyond the end of the slice yield an empty (non-nil) result.
func Paginate[T any](items []T, page, rowPerPage int) []T {
	start := (page - 1) * rowPerPage
	if start >= len(items) {
		return []T{}
	}

	end := min(start+rowPerPage, len(items))
	return items[start:end]
}
