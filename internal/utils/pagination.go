package utils

// DefaultPageSize is the number of rows a table shows before the admin picks another size
const DefaultPageSize = 5

// PageSizes are the choices offered by the rows-per-page select
var PageSizes = []int{5, 10, 15, 20}

// Pagination describes one page of a table. Page always lies in [1, TotalPages].
type Pagination struct {
	Page       int
	PerPage    int
	TotalPages int
	TotalItems int
	Start      int // inclusive slice bound
	End        int // exclusive slice bound
	PageSizes  []int
}

// IsPageSize reports whether n is one of the selectable page sizes
func IsPageSize(n int) bool {
	for _, size := range PageSizes {
		if size == n {
			return true
		}
	}
	return false
}

// Paginate computes the page window for total rows. An unknown perPage falls back to
// DefaultPageSize and page is clamped into range, so a stale link never shows an empty page.
func Paginate(total, page, perPage int) Pagination {
	if !IsPageSize(perPage) {
		perPage = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}

	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}

	return Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		TotalItems: total,
		Start:      start,
		End:        end,
		PageSizes:  PageSizes,
	}
}

func (p Pagination) HasPrev() bool { return p.Page > 1 }

func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

func (p Pagination) PrevPage() int {
	if p.HasPrev() {
		return p.Page - 1
	}
	return p.Page
}

func (p Pagination) NextPage() int {
	if p.HasNext() {
		return p.Page + 1
	}
	return p.Page
}

// PageSlice returns the rows of items that belong to page p
func PageSlice[T any](items []T, p Pagination) []T {
	if p.Start >= len(items) {
		return []T{}
	}
	end := p.End
	if end > len(items) {
		end = len(items)
	}
	return items[p.Start:end]
}
