package models

// PageSize is the fixed number of items per page.
const PageSize = 20

// Response is the envelope of every API response.
// swagger:model Response
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Page is a page of a listing. Next is nil on the last page, Previous is nil on the first.
// swagger:model Page
type Page[T any] struct {
	Next     *int `json:"next"`
	Previous *int `json:"previous"`
	List     []T  `json:"list"`
}

// NormalizePage maps anything below 1 to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// LimitOffset returns the query window for page. The limit includes one look-ahead row
// so the caller can tell whether a next page exists.
func LimitOffset(page int) (limit, offset int) {
	page = NormalizePage(page)
	return PageSize + 1, (page - 1) * PageSize
}

// NewPage builds a Page from up to PageSize+1 fetched rows.
func NewPage[T any](page int, rows []T) Page[T] {
	page = NormalizePage(page)
	p := Page[T]{List: rows}
	if len(rows) > PageSize {
		p.List = rows[:PageSize]
		next := page + 1
		p.Next = &next
	}
	if p.List == nil {
		p.List = []T{}
	}
	if page > 1 {
		prev := page - 1
		p.Previous = &prev
	}
	return p
}

// MapPage converts the items of p with fn, stopping at the first error.
func MapPage[T, U any](p Page[T], fn func(T) (U, error)) (Page[U], error) {
	out := Page[U]{Next: p.Next, Previous: p.Previous, List: make([]U, 0, len(p.List))}
	for _, item := range p.List {
		u, err := fn(item)
		if err != nil {
			return Page[U]{}, err
		}
		out.List = append(out.List, u)
	}
	return out, nil
}
