package store

// Pagination defaults and bounds shared by all list operations.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListParams selects one page of a list result. The zero value means the
// first page with the default page size.
type ListParams struct {
	Page     int
	PageSize int
}

// Normalize clamps the params to valid values: page at least 1, page size
// between 1 and MaxPageSize (DefaultPageSize when unset).
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Limit returns the SQL LIMIT for the page.
func (p ListParams) Limit() int {
	return p.Normalize().PageSize
}

// Offset returns the SQL OFFSET for the page.
func (p ListParams) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}
