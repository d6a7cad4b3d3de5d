package repository

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/CircleCI-Public/repo-browser/api/rest"
	"github.com/CircleCI-Public/repo-browser/errs"
	"github.com/CircleCI-Public/repo-browser/settings"
)

type repositoryRestClient struct {
	client *rest.Client
}

var _ RepositoryClient = &repositoryRestClient{}

// NewRepositoryRestClient returns a RepositoryClient talking to config.Host.
func NewRepositoryRestClient(config settings.Config, command string) (*repositoryRestClient, error) {
	client, err := rest.New(config.Host, config.Endpoint,
		rest.WithHTTPClient(config.HTTPClient),
		rest.WithTimeout(config.Timeout),
		rest.WithCommand(command),
	)
	if err != nil {
		return nil, err
	}
	return &repositoryRestClient{client: client}, nil
}

func (c *repositoryRestClient) GetOrganization(ctx context.Context, org string) (*Organization, error) {
	if err := validSegment("organization", org); err != nil {
		return nil, err
	}

	req, err := c.client.NewRequest(ctx, "GET", &url.URL{Path: path.Join("orgs", org)})
	if err != nil {
		return nil, err
	}

	var resp Organization
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *repositoryRestClient) ListRepositories(ctx context.Context, org string, page, perPage int) ([]Repository, error) {
	if err := validSegment("organization", org); err != nil {
		return nil, err
	}
	if page < 1 || perPage < 1 {
		return nil, fmt.Errorf("invalid page %d of size %d", page, perPage)
	}

	query := url.Values{}
	query.Set("per_page", strconv.Itoa(perPage))
	query.Set("page", strconv.Itoa(page))

	req, err := c.client.NewRequest(ctx, "GET", &url.URL{
		Path:     path.Join("orgs", org, "repos"),
		RawQuery: query.Encode(),
	})
	if err != nil {
		return nil, err
	}

	var resp []Repository
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *repositoryRestClient) GetRepository(ctx context.Context, org, name string) (*Repository, error) {
	if err := validSegment("organization", org); err != nil {
		return nil, err
	}
	if err := validSegment("repository", name); err != nil {
		return nil, err
	}

	req, err := c.client.NewRequest(ctx, "GET", &url.URL{Path: path.Join("repos", org, name)})
	if err != nil {
		return nil, err
	}

	var resp *Repository
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	if resp == nil || resp.Name == "" {
		return nil, errs.NotFoundf("repository %s/%s not found", org, name)
	}
	return resp, nil
}

func validSegment(kind, s string) error {
	if s == "" || s == "." || s == ".." || strings.ContainsAny(s, "/?#") {
		return fmt.Errorf("invalid %s name %q", kind, s)
	}
	return nil
}
