package models

// Page is one 0-indexed page of an ordered result set.
type Page[T any] struct {
	Data       []T
	Page       int
	PageSize   int
	TotalCount int
}

func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

func (p Page[T]) HasNextPage() bool {
	return p.Page < p.TotalPages()-1
}

func (p Page[T]) HasPreviousPage() bool {
	return p.Page > 0
}

// MapPage converts the items of a page while keeping its paging metadata.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, len(p.Data))
	for i, item := range p.Data {
		out[i] = fn(item)
	}
	return Page[R]{
		Data:       out,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
	}
}
