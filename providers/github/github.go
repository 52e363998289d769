package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/codeforge/ai-gateway/internal/utils"
)

const (
	defaultBaseURL = "https://api.github.com"

	// apiVersionHeader pins the REST API wire format.
	apiVersion = "2022-11-28"

	// maxUserRepos caps repository listings per user.
	maxUserRepos = 10
	// maxSearchResults caps code-example search hits.
	maxSearchResults = 5
	// readmeSnippetLen is the README snippet length in characters.
	readmeSnippetLen = 200
)

// Client is a minimal GitHub REST client.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

// New returns a Client initialized from environment variables. It reads
// GITHUB_TOKEN for authentication; an empty token means anonymous access.
func New() *Client {
	return &Client{
		token:   os.Getenv("GITHUB_TOKEN"),
		baseURL: defaultBaseURL,
		client:  &http.Client{},
	}
}

// WithToken returns a copy of the client authenticating with token. The copy
// keeps per-request user tokens from leaking into the shared client.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// WithBaseURL sets the API base URL. Used for GitHub Enterprise and tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithHttpClient sets a custom HTTP client.
func (c *Client) WithHttpClient(httpClient *http.Client) *Client {
	c.client = httpClient
	return c
}

func (c *Client) headers(accept string) []utils.HeaderOption {
	h := []utils.HeaderOption{
		{Key: "Accept", Value: accept},
		{Key: "X-GitHub-Api-Version", Value: apiVersion},
	}
	if c.token != "" {
		h = append(h, utils.HeaderOption{Key: "Authorization", Value: "Bearer " + c.token})
	}
	return h
}

// GetUser fetches the public profile of username.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))
	_, user, err := utils.DoGetSync[User](ctx, c.client, endpoint, "", c.headers("application/vnd.github+json")...)
	if err != nil {
		return nil, fmt.Errorf("github user %q: %w", username, err)
	}
	return user, nil
}

// ListRepos fetches up to maxUserRepos repositories of username.
func (c *Client) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d", c.baseURL, url.PathEscape(username), maxUserRepos)
	_, repos, err := utils.DoGetSync[[]apiRepo](ctx, c.client, endpoint, "", c.headers("application/vnd.github+json")...)
	if err != nil {
		return nil, fmt.Errorf("github repos for %q: %w", username, err)
	}

	result := make([]Repo, 0, len(*repos))
	for _, r := range *repos {
		result = append(result, Repo{
			Name:        r.Name,
			FullName:    r.FullName,
			Description: r.Description,
			URL:         r.HTMLURL,
			Language:    r.Language,
			Stars:       r.StargazersCount,
		})
	}
	return result, nil
}

// SearchCodeExamples searches repositories matching query, ordered by stars,
// and decorates each of the top hits with a README snippet. A repository
// whose README cannot be fetched still appears in the results with a
// placeholder snippet.
func (c *Client) SearchCodeExamples(ctx context.Context, query string) ([]CodeExample, error) {
	endpoint := fmt.Sprintf("%s/search/repositories?q=%s&sort=stars&order=desc&per_page=%d",
		c.baseURL, url.QueryEscape(query), maxSearchResults)
	_, search, err := utils.DoGetSync[searchReposResponse](ctx, c.client, endpoint, "", c.headers("application/vnd.github+json")...)
	if err != nil {
		return nil, fmt.Errorf("github repository search %q: %w", query, err)
	}

	examples := make([]CodeExample, 0, len(search.Items))
	for _, r := range search.Items {
		description := r.Description
		if description == "" {
			description = "No description available"
		}

		snippet, err := c.readmeSnippet(ctx, r.FullName)
		if err != nil {
			snippet = "Repository: " + r.Name
		}

		examples = append(examples, CodeExample{
			Title:         r.Name,
			Description:   description,
			Language:      r.Language,
			URL:           r.HTMLURL,
			Stars:         r.StargazersCount,
			ReadmeSnippet: snippet,
		})
	}
	return examples, nil
}

// readmeSnippet fetches the repository README in GitHub's rendered-HTML
// representation, converts it to Markdown, and truncates it for display.
func (c *Client) readmeSnippet(ctx context.Context, fullName string) (string, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/readme", c.baseURL, fullName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	for _, h := range c.headers("application/vnd.github.html") {
		req.Header.Set(h.Key, h.Value)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching readme: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("readme for %s: non-2xx status %d", fullName, res.StatusCode)
	}

	htmlBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("error reading readme body: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(string(htmlBytes))
	if err != nil {
		return "", fmt.Errorf("converting readme to markdown: %w", err)
	}

	return utils.Snippet(markdown, readmeSnippetLen), nil
}
