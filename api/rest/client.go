package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CircleCI-Public/repo-browser/errs"
	"github.com/CircleCI-Public/repo-browser/version"
)

const (
	acceptHeader = "application/vnd.github+json"
	apiVersion   = "2022-11-28"
)

type Client struct {
	baseURL *url.URL
	command string
	timeout time.Duration
	client  *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithCommand sets the subcommand sent in the Repo-Browser-Command header.
func WithCommand(command string) Option {
	return func(c *Client) {
		c.command = command
	}
}

func New(host, endpoint string, opts ...Option) (*Client, error) {
	// Ensure endpoint ends with a slash
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid host %q: %w", host, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid host %q: scheme and host are required", host)
	}

	c := &Client{
		baseURL: u.ResolveReference(&url.URL{Path: endpoint}),
		client:  &http.Client{},
	}
	for _, o := range opts {
		o(c)
	}
	if c.timeout > 0 {
		// never mutate a client handed in by the caller
		hc := *c.client
		hc.Timeout = c.timeout
		c.client = &hc
	}
	return c, nil
}

func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

func (c *Client) NewRequest(ctx context.Context, method string, u *url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.ResolveReference(u).String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", version.UserAgent())
	if c.command != "" {
		req.Header.Set("Repo-Browser-Command", c.command)
	}

	return req, nil
}

// DoRequest sends req and decodes a JSON body into resp. Transport failures
// come back as errs.NetworkError with a zero status code; a non-2xx response
// is always an *HTTPError carrying the status.
func (c *Client) DoRequest(req *http.Request, resp interface{}) (statusCode int, err error) {
	httpResp, err := c.client.Do(req)
	if err != nil {
		return 0, errs.Network(err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= 300 {
		httpError := &HTTPError{Code: httpResp.StatusCode}
		body := struct {
			Message string `json:"message"`
		}{}
		raw, _ := io.ReadAll(io.LimitReader(httpResp.Body, 1<<16))
		if json.Unmarshal(raw, &body) == nil {
			httpError.Message = body.Message
		}
		return httpResp.StatusCode, httpError
	}

	if resp != nil {
		if !strings.Contains(httpResp.Header.Get("Content-Type"), "application/json") {
			return httpResp.StatusCode, errors.New("wrong content type received")
		}

		err = json.NewDecoder(httpResp.Body).Decode(resp)
		if err == io.EOF {
			// empty body, leave resp untouched
			return httpResp.StatusCode, nil
		}
		if err != nil {
			return httpResp.StatusCode, err
		}
	}
	return httpResp.StatusCode, nil
}

type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("response %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("response %d (%s)", e.Code, http.StatusText(e.Code))
}
