package view

// Paginate returns page number page (1-based) of size pageSize, clipped to the slice.
// Pages past the end and non-positive page or size yield an empty slice.
func Paginate[T any](records []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}

	// Bound the page before multiplying so (page-1)*pageSize cannot overflow
	if page-1 >= TotalPages(len(records), pageSize) {
		return []T{}
	}

	start := (page - 1) * pageSize
	end := len(records)
	if pageSize < end-start {
		end = start + pageSize
	}

	return records[start:end]
}

// TotalPages is ceil(count/pageSize), with zero pages for zero matches
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize < 1 {
		return 0
	}
	pages := count / pageSize
	if count%pageSize != 0 {
		pages++
	}
	return pages
}
