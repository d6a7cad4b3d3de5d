package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/CircleCI-Public/repo-browser/api/repository"
	"github.com/CircleCI-Public/repo-browser/api/rest"
	"github.com/CircleCI-Public/repo-browser/errs"
)

type Status int

const (
	Loading Status = iota
	Failed
	Ready
)

func (s Status) String() string {
	switch s {
	case Failed:
		return "error"
	case Ready:
		return "ready"
	default:
		return "loading"
	}
}

// FetchState is one view's remote-data slot. The zero value is Loading.
type FetchState[T any] struct {
	status  Status
	message string
	data    T
}

func LoadingState[T any]() FetchState[T] {
	return FetchState[T]{}
}

func ErrorState[T any](message string) FetchState[T] {
	return FetchState[T]{status: Failed, message: message}
}

func ReadyState[T any](data T) FetchState[T] {
	return FetchState[T]{status: Ready, data: data}
}

func (s FetchState[T]) Status() Status  { return s.status }
func (s FetchState[T]) Message() string { return s.message }

// Data returns the payload; ok is false unless the state is Ready.
func (s FetchState[T]) Data() (data T, ok bool) {
	return s.data, s.status == Ready
}

// ListPage is what one list fetch cycle produces.
type ListPage struct {
	Organization repository.Organization
	Repos        []repository.Repository
}

// ListRequest identifies one list fetch cycle.
type ListRequest struct {
	Seq      uint64
	Page     int
	PageSize int
}

type ListResult struct {
	Request ListRequest
	State   FetchState[ListPage]
}

type DetailRequest struct {
	Seq  uint64
	Name string
}

type DetailResult struct {
	Request DetailRequest
	State   FetchState[repository.Repository]
}

// Source performs the remote reads. It holds no per-cycle state, so its
// methods are safe to run on any goroutine.
type Source struct {
	client repository.RepositoryClient
	org    string
}

func NewSource(client repository.RepositoryClient, org string) *Source {
	return &Source{client: client, org: org}
}

func (s *Source) Org() string { return s.org }

// FetchList reads the organization summary and then one page of
// repositories. Either read failing fails the whole cycle.
func (s *Source) FetchList(ctx context.Context, req ListRequest) ListResult {
	org, err := s.client.GetOrganization(ctx, s.org)
	if err != nil {
		return ListResult{Request: req, State: ErrorState[ListPage](failure("Org fetch failed", err))}
	}

	repos, err := s.client.ListRepositories(ctx, s.org, req.Page, req.PageSize)
	if err != nil {
		return ListResult{Request: req, State: ErrorState[ListPage](failure("Repos fetch failed", err))}
	}

	return ListResult{Request: req, State: ReadyState(ListPage{Organization: *org, Repos: repos})}
}

func (s *Source) FetchDetail(ctx context.Context, req DetailRequest) DetailResult {
	repo, err := s.client.GetRepository(ctx, s.org, req.Name)
	if errors.Is(err, errs.ErrNotFound) || (err == nil && repo == nil) {
		return DetailResult{Request: req, State: ErrorState[repository.Repository]("Repository not found.")}
	}
	if err != nil {
		return DetailResult{Request: req, State: ErrorState[repository.Repository](failure("Repo details fetch failed", err))}
	}
	return DetailResult{Request: req, State: ReadyState(*repo)}
}

// failure renders err for the error panel: the status code for HTTP errors,
// the error text for everything else.
func failure(stage string, err error) string {
	var httpErr *rest.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprintf("%s: %d", stage, httpErr.Code)
	}
	return fmt.Sprintf("%s: %v", stage, err)
}

// slot is a FetchState guarded by a sequence number: only the result of the
// most recently issued request may land in it.
type slot[T any] struct {
	seq   uint64
	state FetchState[T]
}

func (s *slot[T]) begin() uint64 {
	s.seq++
	s.state = LoadingState[T]()
	return s.seq
}

func (s *slot[T]) apply(seq uint64, state FetchState[T]) bool {
	if seq != s.seq {
		return false
	}
	s.state = state
	return true
}
