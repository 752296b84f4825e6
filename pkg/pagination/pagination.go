package pagination

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Page holds normalized paging parameters.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps page and pageSize to valid values, applying defaults for
// zero or negative inputs.
func Normalize(page, pageSize int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return Page{Number: page, Size: pageSize}
}

// Offset returns the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns ceil(totalItems / size).
func (p Page) TotalPages(totalItems int64) int {
	pages := int(totalItems) / p.Size
	if int(totalItems)%p.Size > 0 {
		pages++
	}
	return pages
}
