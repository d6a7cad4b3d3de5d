package listing

import (
	"fmt"

	"github.com/CircleCI-Public/repo-browser/settings"
)

// Pagination tracks where the listing is. The zero value is not usable, use
// NewPagination.
type Pagination struct {
	page       int
	pageSize   int
	totalCount int
}

func NewPagination(pageSize int) (Pagination, error) {
	if !settings.ValidPageSize(pageSize) {
		return Pagination{}, fmt.Errorf("page size must be one of %v, got %d", settings.PageSizes, pageSize)
	}
	return Pagination{page: 1, pageSize: pageSize}, nil
}

func (p Pagination) Page() int       { return p.page }
func (p Pagination) PageSize() int   { return p.pageSize }
func (p Pagination) TotalCount() int { return p.totalCount }

func (p Pagination) TotalPages() int {
	return TotalPages(p.totalCount, p.pageSize)
}

func (p Pagination) HasNext() bool     { return p.page < p.TotalPages() }
func (p Pagination) HasPrevious() bool { return p.page > 1 }

// SetPageSize always goes back to the first page, even when the current page
// would still exist at the new size.
func (p *Pagination) SetPageSize(n int) error {
	if !settings.ValidPageSize(n) {
		return fmt.Errorf("page size must be one of %v, got %d", settings.PageSizes, n)
	}
	p.pageSize = n
	p.page = 1
	return nil
}

// NextPage reports whether the page moved.
func (p *Pagination) NextPage() bool {
	if !p.HasNext() {
		return false
	}
	p.page++
	return true
}

// PreviousPage reports whether the page moved.
func (p *Pagination) PreviousPage() bool {
	if !p.HasPrevious() {
		return false
	}
	p.page--
	return true
}

// GoTo jumps to page without an upper bound check; the bound is applied by
// SetTotalCount once the organization summary is known.
func (p *Pagination) GoTo(page int) error {
	if page < 1 {
		return fmt.Errorf("page must be at least 1, got %d", page)
	}
	p.page = page
	return nil
}

// SetTotalCount records the organization's repository count and clamps the
// current page into range. It reports whether the page had to move.
func (p *Pagination) SetTotalCount(n int) bool {
	if n < 0 {
		n = 0
	}
	p.totalCount = n
	if last := p.TotalPages(); p.page > last {
		p.page = last
		return true
	}
	return false
}

// TotalPages is ceil(totalCount/pageSize), never less than 1 so the page
// controls have something to show before the count is known.
func TotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 1
	}
	return (totalCount + pageSize - 1) / pageSize
}
