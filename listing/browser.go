// Package listing holds the state behind the repository browser: which page
// is shown, how it is sorted, which view is active and what the remote data
// looks like. Presentation reads Snapshots and changes state only through
// Browser's methods; remote reads go through Source and come back as results
// that Browser applies or discards.
package listing

import (
	"slices"

	"github.com/CircleCI-Public/repo-browser/api/repository"
	"github.com/CircleCI-Public/repo-browser/settings"
)

type Browser struct {
	source    *Source
	pager     Pagination
	directive Directive
	nav       Navigator
	list      slot[ListPage]
	rows      []repository.Repository
	detail    slot[repository.Repository]
	orgName   string
}

func New(source *Source, pageSize int) (*Browser, error) {
	pager, err := NewPagination(pageSize)
	if err != nil {
		return nil, err
	}
	return &Browser{
		source:    source,
		pager:     pager,
		directive: DefaultDirective,
		nav:       NewNavigator(),
	}, nil
}

func (b *Browser) Source() *Source { return b.source }

// Start issues the first list fetch cycle.
func (b *Browser) Start() ListRequest {
	return b.beginList()
}

func (b *Browser) beginList() ListRequest {
	b.rows = nil
	return ListRequest{
		Seq:      b.list.begin(),
		Page:     b.pager.Page(),
		PageSize: b.pager.PageSize(),
	}
}

// SetPageSize changes the page size and returns to page 1. It returns nil
// when neither actually changed.
func (b *Browser) SetPageSize(n int) (*ListRequest, error) {
	if n == b.pager.PageSize() && b.pager.Page() == 1 {
		return nil, nil
	}
	if err := b.pager.SetPageSize(n); err != nil {
		return nil, err
	}
	req := b.beginList()
	return &req, nil
}

// CyclePageSize moves to the next enumerated page size, wrapping around.
func (b *Browser) CyclePageSize() *ListRequest {
	req, err := b.SetPageSize(NextPageSize(b.pager.PageSize()))
	if err != nil {
		panic(err) // NextPageSize only returns enumerated sizes
	}
	return req
}

func (b *Browser) NextPage() *ListRequest {
	if !b.pager.NextPage() {
		return nil
	}
	req := b.beginList()
	return &req
}

func (b *Browser) PreviousPage() *ListRequest {
	if !b.pager.PreviousPage() {
		return nil
	}
	req := b.beginList()
	return &req
}

// GoTo jumps to page. Use it before Start; afterwards it issues a new cycle.
func (b *Browser) GoTo(page int) (*ListRequest, error) {
	if page == b.pager.Page() {
		return nil, nil
	}
	if err := b.pager.GoTo(page); err != nil {
		return nil, err
	}
	req := b.beginList()
	return &req, nil
}

// ToggleSort applies Directive.Toggle and re-sorts the current rows.
func (b *Browser) ToggleSort(key SortKey) Directive {
	b.SetDirective(b.directive.Toggle(key))
	return b.directive
}

func (b *Browser) SetDirective(d Directive) {
	b.directive = d
	if page, ok := b.list.state.Data(); ok {
		b.rows = Sort(page.Repos, b.directive)
	}
}

// ApplyList lands a list result if it belongs to the latest cycle. When the
// new total count pushes the current page out of range, the page is clamped
// and the follow-up request for it is returned.
func (b *Browser) ApplyList(res ListResult) (applied bool, follow *ListRequest) {
	if !b.list.apply(res.Request.Seq, res.State) {
		return false, nil
	}

	page, ok := res.State.Data()
	if !ok {
		b.rows = nil
		return true, nil
	}

	if name := page.Organization.DisplayName(); name != "" {
		b.orgName = name
	}
	if b.pager.SetTotalCount(page.Organization.PublicRepos) {
		req := b.beginList()
		return true, &req
	}
	b.rows = Sort(page.Repos, b.directive)
	return true, nil
}

// SelectRepo opens the detail view for name and issues its fetch.
func (b *Browser) SelectRepo(name string) (DetailRequest, error) {
	d, err := b.nav.Select(name)
	if err != nil {
		return DetailRequest{}, err
	}
	return DetailRequest{Seq: b.detail.begin(), Name: d.Name()}, nil
}

// Back returns to the listing. Pagination, sort and list data are untouched;
// an in-flight detail fetch will be discarded when it lands.
func (b *Browser) Back() bool {
	if !b.nav.Back() {
		return false
	}
	b.detail.begin()
	return true
}

// ApplyDetail lands a detail result if it is the latest fetch and is for
// the repository currently shown.
func (b *Browser) ApplyDetail(res DetailResult) bool {
	d, ok := b.nav.Current().(Detail)
	if !ok || d.Name() != res.Request.Name {
		return false
	}
	return b.detail.apply(res.Request.Seq, res.State)
}

// Snapshot is a read-only copy of everything presentation needs. Rows is
// the current page in display order and is empty unless List is Ready.
type Snapshot struct {
	Org         string
	OrgName     string
	View        View
	Page        int
	PageSize    int
	TotalCount  int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
	Directive   Directive
	List        FetchState[ListPage]
	Rows        []repository.Repository
	Detail      FetchState[repository.Repository]
}

func (b *Browser) Snapshot() Snapshot {
	return Snapshot{
		Org:         b.source.Org(),
		OrgName:     b.displayName(),
		View:        b.nav.Current(),
		Page:        b.pager.Page(),
		PageSize:    b.pager.PageSize(),
		TotalCount:  b.pager.TotalCount(),
		TotalPages:  b.pager.TotalPages(),
		HasNext:     b.pager.HasNext(),
		HasPrevious: b.pager.HasPrevious(),
		Directive:   b.directive,
		List:        b.list.state,
		Rows:        slices.Clone(b.rows),
		Detail:      b.detail.state,
	}
}

// displayName is the last organization name a fetch returned, kept across
// refetches, or the org slug before the first one lands.
func (b *Browser) displayName() string {
	if b.orgName != "" {
		return b.orgName
	}
	return b.source.Org()
}

// NextPageSize returns the enumerated page size after n, wrapping around.
func NextPageSize(n int) int {
	sizes := settings.PageSizes
	for i, s := range sizes {
		if s == n {
			return sizes[(i+1)%len(sizes)]
		}
	}
	return sizes[0]
}
