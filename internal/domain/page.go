package domain

type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Size
}

type Page[T any] struct {
	Items []T
	Total int64
}
