package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hudmirror/pkg/driver/httpclient"
	"hudmirror/pkg/hud"
)

const DefaultAPIURL = "https://api.github.com"

// CommitTimeLayout is the layout of commit dates returned by the API.
const CommitTimeLayout = "2006-01-02T15:04:05Z"

var ErrAPI = errors.New("github api error")

// APIError is returned when the API answers with a status other than 200.
type APIError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API returned %d error code (%s)", e.StatusCode, e.URL)
}

func (e *APIError) Unwrap() error { return ErrAPI }

// Commit is the latest commit of a repository.
type Commit struct {
	SHA  string
	Time int64
}

type Client struct {
	baseURL string
	token   string
	http    httpclient.Driver
}

type Option func(*Client)

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithToken sends the token as a bearer credential.
func WithToken(token string) Option {
	return func(c *Client) { c.token = strings.TrimSpace(token) }
}

// NewClient returns a client issuing requests through d. The user agent is
// expected to be applied by d.
func NewClient(d httpclient.Driver, opts ...Option) *Client {
	c := &Client{baseURL: DefaultAPIURL, http: d}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIURL turns https://github.com/<owner>/<repo> into the commits endpoint
// asking for the single most recent commit.
func APIURL(baseURL, repoURL string) (string, error) {
	repo, ok := hud.GitHubRepo(repoURL)
	if !ok {
		return "", fmt.Errorf("not a github repository url: %q", repoURL)
	}
	return fmt.Sprintf("%s/repos/%s/commits?per_page=1", strings.TrimRight(baseURL, "/"), repo), nil
}

// ToUnix converts a UTC commit date to Unix seconds, independent of the
// local time zone.
func ToUnix(s string) (int64, error) {
	t, err := time.Parse(CommitTimeLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid commit date %q: %w", s, err)
	}
	return t.Unix(), nil
}

type commitPayload struct {
	SHA    string `json:"sha"`
	Commit struct {
		Committer struct {
			Date string `json:"date"`
		} `json:"committer"`
	} `json:"commit"`
}

// LatestCommit fetches the SHA and committer timestamp of the newest commit.
func (c *Client) LatestCommit(ctx context.Context, repoURL string) (Commit, error) {
	url, err := APIURL(c.baseURL, repoURL)
	if err != nil {
		return Commit{}, err
	}

	var payload []commitPayload
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return Commit{}, err
	}
	if len(payload) == 0 {
		return Commit{}, fmt.Errorf("no commits returned for %s", repoURL)
	}
	sha := strings.TrimSpace(payload[0].SHA)
	if sha == "" {
		return Commit{}, fmt.Errorf("missing sha in github response")
	}
	ts, err := ToUnix(payload[0].Commit.Committer.Date)
	if err != nil {
		return Commit{}, err
	}
	return Commit{SHA: sha, Time: ts}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &APIError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode github response: %w", err)
	}
	return nil
}
