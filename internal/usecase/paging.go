package usecase

// paginate slices items for a 1-based page of perPage entries and returns the
// page, the total item count and the number of pages. Out-of-range pages
// return an empty slice rather than an error.
func paginate[T any](items []T, page, perPage int) ([]T, int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	total := len(items)
	pages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= total {
		return []T{}, total, pages
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return items[start:end], total, pages
}
