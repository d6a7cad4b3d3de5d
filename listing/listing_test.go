package listing

import (
	"context"
	"fmt"
	"sync"

	"github.com/CircleCI-Public/repo-browser/api/repository"
	"github.com/CircleCI-Public/repo-browser/errs"
)

type fakeClient struct {
	mu        sync.Mutex
	org       repository.Organization
	orgErr    error
	repos     []repository.Repository
	reposErr  error
	detailErr error
	calls     []string
}

var _ repository.RepositoryClient = &fakeClient{}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) GetOrganization(_ context.Context, org string) (*repository.Organization, error) {
	f.record("org " + org)
	if f.orgErr != nil {
		return nil, f.orgErr
	}
	o := f.org
	return &o, nil
}

func (f *fakeClient) ListRepositories(_ context.Context, org string, page, perPage int) ([]repository.Repository, error) {
	f.record(fmt.Sprintf("repos %s page=%d per_page=%d", org, page, perPage))
	if f.reposErr != nil {
		return nil, f.reposErr
	}
	return f.repos, nil
}

func (f *fakeClient) GetRepository(_ context.Context, org, name string) (*repository.Repository, error) {
	f.record("repo " + org + "/" + name)
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	for _, r := range f.repos {
		if r.Name == name {
			r := r
			return &r, nil
		}
	}
	return nil, errs.NotFoundf("repository %s/%s not found", org, name)
}

func repo(id int64, name string, watchers int) repository.Repository {
	return repository.Repository{
		ID:            id,
		Name:          name,
		HTMLURL:       "https://github.com/acme/" + name,
		WatchersCount: watchers,
		UpdatedAt:     "2024-01-01T00:00:00Z",
	}
}

func names(repos []repository.Repository) []string {
	out := make([]string, 0, len(repos))
	for _, r := range repos {
		out = append(out, r.Name)
	}
	return out
}
