package schema

import "github.com/zulandar/konoha/internal/pagination"

// ListQuery carries the query parameters shared by every list endpoint.
// Page and size are pointers so an absent parameter and an out-of-range
// zero are told apart at binding; the search term's length bounds are
// enforced there too, before any repository call.
type ListQuery struct {
	Page   *int   `form:"page" binding:"omitnil,min=1"`
	Size   *int   `form:"size" binding:"omitnil,min=1,max=100"`
	Search string `form:"search" binding:"omitempty,min=3,max=50"`
}

// Pagination converts the bound parameters to envelope math inputs,
// zero meaning the parameter was omitted.
func (q ListQuery) Pagination() pagination.Params {
	var p pagination.Params
	if q.Page != nil {
		p.Page = *q.Page
	}
	if q.Size != nil {
		p.Size = *q.Size
	}
	return p
}

// JutsuListQuery adds the optional owner filter to the common list
// parameters.
type JutsuListQuery struct {
	ListQuery
	CharacterID *uint `form:"character_id" binding:"omitnil,min=1"`
}
