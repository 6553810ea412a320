// Package pagination implements the page/size envelope shared by every
// list endpoint.
package pagination

// Defaults and bounds for the page and size query parameters.
const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// Params carries the paging inputs. Zero values mean the caller
// omitted the parameter; Normalize fills in the defaults.
type Params struct {
	Page int
	Size int
}

// Normalize replaces omitted values with the defaults.
func (p *Params) Normalize() {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Size == 0 {
		p.Size = DefaultSize
	}
}

// Offset returns the number of rows to skip for this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Size
}

// Page is the envelope every list endpoint returns.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// New assembles a Page from one store query's results. Items is never
// nil in the envelope, so an empty page serializes as [] rather than
// null.
func New[T any](items []T, total int64, p Params) Page[T] {
	p.Normalize()
	if items == nil {
		items = []T{}
	}
	pages := int((total + int64(p.Size) - 1) / int64(p.Size))
	return Page[T]{
		Items:   items,
		Total:   total,
		Page:    p.Page,
		Size:    p.Size,
		Pages:   pages,
		HasNext: p.Page < pages,
		HasPrev: p.Page > 1,
	}
}

// Map converts a page's items with fn, keeping the envelope intact.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[U]{
		Items:   items,
		Total:   p.Total,
		Page:    p.Page,
		Size:    p.Size,
		Pages:   p.Pages,
		HasNext: p.HasNext,
		HasPrev: p.HasPrev,
	}
}
