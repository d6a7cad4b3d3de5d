package repository

import (
	"context"
	"time"

	"github.com/araddon/dateparse"
)

// Repository is a repository record as returned by the GitHub REST API.
// Only the fields the browser shows are decoded.
type Repository struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	HTMLURL         string  `json:"html_url"`
	Description     *string `json:"description"`
	Language        *string `json:"language"`
	WatchersCount   int     `json:"watchers_count"`
	ForksCount      int     `json:"forks_count"`
	OpenIssuesCount int     `json:"open_issues_count"`
	Archived        bool    `json:"archived"`
	UpdatedAt       string  `json:"updated_at"`
}

const (
	StatusArchived = "Archived"
	StatusActive   = "Active"
)

func (r Repository) Status() string {
	if r.Archived {
		return StatusArchived
	}
	return StatusActive
}

func (r Repository) DescriptionOrDefault() string {
	if r.Description == nil || *r.Description == "" {
		return "No description"
	}
	return *r.Description
}

func (r Repository) LanguageOrDefault() string {
	if r.Language == nil || *r.Language == "" {
		return "N/A"
	}
	return *r.Language
}

// UpdatedTime parses UpdatedAt. Anything unparseable comes back as the zero
// time with ok=false.
func (r Repository) UpdatedTime() (t time.Time, ok bool) {
	if r.UpdatedAt == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseStrict(r.UpdatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Organization is the subset of an organization record used to size pages.
type Organization struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	PublicRepos int    `json:"public_repos"`
}

// DisplayName prefers the organization's name over its login.
func (o Organization) DisplayName() string {
	if o.Name != "" {
		return o.Name
	}
	return o.Login
}

// RepositoryClient is the interface to the read-only repository endpoints.
type RepositoryClient interface {
	GetOrganization(ctx context.Context, org string) (*Organization, error)
	ListRepositories(ctx context.Context, org string, page, perPage int) ([]Repository, error)
	GetRepository(ctx context.Context, org, name string) (*Repository, error)
}
