// Package scholar provides a thin client for the Semantic Scholar Graph API.
//
// Every method maps one-to-one onto a single remote endpoint: parameters are
// forwarded under their literal upstream names with unset optional fields
// omitted, and the decoded JSON body is returned as-is with no schema
// imposed. Non-success responses surface an *APIError; nothing is retried.
//
// API Documentation: https://api.semanticscholar.org/api-docs/
package scholar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the default base URL for the Semantic Scholar Graph API.
	DefaultBaseURL = "https://api.semanticscholar.org/graph/v1"

	// DefaultRateLimit is the default rate limit in requests per second.
	// With an API key, this can be increased.
	DefaultRateLimit = 10.0

	// DefaultBurstSize is the default burst size for rate limiting.
	DefaultBurstSize = 10

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// apiKeyHeader is the header name for the Semantic Scholar API key.
	apiKeyHeader = "x-api-key"

	// maxResponseBytes caps response body reads to prevent resource exhaustion.
	maxResponseBytes = 10 << 20
)

// Config contains configuration options for the Semantic Scholar client.
type Config struct {
	// BaseURL is the base URL for the API.
	// Defaults to DefaultBaseURL if empty.
	BaseURL string

	// APIKey is the optional API key for authenticated requests.
	// Authenticated requests have higher rate limits.
	APIKey string

	// Timeout is the HTTP request timeout.
	// Defaults to DefaultTimeout if zero.
	Timeout time.Duration

	// RateLimit is the maximum requests per second.
	// Defaults to DefaultRateLimit if zero.
	RateLimit float64

	// BurstSize is the maximum burst of requests allowed.
	// Defaults to DefaultBurstSize if zero.
	BurstSize int

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string
}

// Recorder records upstream request metrics. Implementations must be safe
// for concurrent use.
type Recorder interface {
	RecordAPIRequest(endpoint string, durationSeconds float64)
	RecordAPIRequestFailed(endpoint, errorType string)
}

// nopRecorder discards all observations.
type nopRecorder struct{}

func (nopRecorder) RecordAPIRequest(string, float64)      {}
func (nopRecorder) RecordAPIRequestFailed(string, string) {}

// Client is the Semantic Scholar Graph API adapter. It holds no mutable
// per-call state, so concurrent invocations are safe.
type Client struct {
	httpClient *HTTPClient
	metrics    Recorder
	config     Config
}

// NewClient creates a new Semantic Scholar client with the given configuration.
// If httpClient is nil, one is created from the configuration settings.
// If rec is nil, metrics are discarded.
func NewClient(cfg Config, httpClient *HTTPClient, rec Recorder) (*Client, error) {
	// Apply defaults
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.BurstSize == 0 {
		cfg.BurstSize = DefaultBurstSize
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	if httpClient == nil {
		httpClient = NewHTTPClient(HTTPClientConfig{
			Timeout:      cfg.Timeout,
			RateLimit:    cfg.RateLimit,
			BurstSize:    cfg.BurstSize,
			UserAgent:    cfg.UserAgent,
			APIKey:       cfg.APIKey,
			APIKeyHeader: apiKeyHeader,
		})
	}

	if rec == nil {
		rec = nopRecorder{}
	}

	return &Client{
		httpClient: httpClient,
		metrics:    rec,
		config:     cfg,
	}, nil
}

// GetAuthorsBatch retrieves a batch of authors by id list.
// POST /author/batch with an "ids" body field.
func (c *Client) GetAuthorsBatch(ctx context.Context, params BatchParams) (any, error) {
	q := url.Values{}
	setString(q, "fields", params.Fields)
	return c.postJSON(ctx, "author/batch", q, batchBody(params.IDs), "author", "batch")
}

// SearchAuthors searches for authors by query string.
// GET /author/search.
func (c *Client) SearchAuthors(ctx context.Context, params AuthorSearchParams) (any, error) {
	q := url.Values{}
	setString(q, "query", params.Query)
	setInt(q, "offset", params.Offset)
	setInt(q, "limit", params.Limit)
	setString(q, "fields", params.Fields)
	return c.getJSON(ctx, "author/search", q, "author", "search")
}

// GetAuthor retrieves a single author by id.
// GET /author/{author_id}.
func (c *Client) GetAuthor(ctx context.Context, authorID, fields string) (any, error) {
	if authorID == "" {
		return nil, NewMissingParameterError("author_id")
	}
	q := url.Values{}
	setString(q, "fields", fields)
	return c.getJSON(ctx, "author/"+url.PathEscape(authorID), q, "author", "get")
}

// GetAuthorPapers lists the papers of an author.
// GET /author/{author_id}/papers.
func (c *Client) GetAuthorPapers(ctx context.Context, authorID string, params PageParams) (any, error) {
	if authorID == "" {
		return nil, NewMissingParameterError("author_id")
	}
	return c.getJSON(ctx, "author/"+url.PathEscape(authorID)+"/papers", params.values(), "author", "papers")
}

// AutocompletePaper suggests paper title completions for a query prefix.
// GET /paper/autocomplete.
func (c *Client) AutocompletePaper(ctx context.Context, query string) (any, error) {
	q := url.Values{}
	setString(q, "query", query)
	return c.getJSON(ctx, "paper/autocomplete", q, "paper", "autocomplete")
}

// GetPapersBatch retrieves a batch of papers by id list.
// POST /paper/batch with an "ids" body field.
func (c *Client) GetPapersBatch(ctx context.Context, params BatchParams) (any, error) {
	q := url.Values{}
	setString(q, "fields", params.Fields)
	return c.postJSON(ctx, "paper/batch", q, batchBody(params.IDs), "paper", "batch")
}

// SearchPapersRelevance runs the relevance-ranked paper search.
// GET /paper/search.
func (c *Client) SearchPapersRelevance(ctx context.Context, params RelevanceSearchParams) (any, error) {
	q := params.PaperFilters.values()
	setString(q, "query", params.Query)
	setInt(q, "offset", params.Offset)
	setInt(q, "limit", params.Limit)
	return c.getJSON(ctx, "paper/search", q, "paper", "search")
}

// SearchPapersBulk runs the bulk paper search with continuation-token paging.
// GET /paper/search/bulk.
func (c *Client) SearchPapersBulk(ctx context.Context, params BulkSearchParams) (any, error) {
	q := params.PaperFilters.values()
	setString(q, "query", params.Query)
	setString(q, "token", params.Token)
	setString(q, "sort", params.Sort)
	return c.getJSON(ctx, "paper/search/bulk", q, "paper", "search_bulk")
}

// MatchPaperTitle retrieves the single best title-match paper.
// GET /paper/search/match.
func (c *Client) MatchPaperTitle(ctx context.Context, params TitleSearchParams) (any, error) {
	q := params.PaperFilters.values()
	setString(q, "query", params.Query)
	return c.getJSON(ctx, "paper/search/match", q, "paper", "search_match")
}

// GetPaper retrieves a single paper by id.
// GET /paper/{paper_id}.
func (c *Client) GetPaper(ctx context.Context, paperID, fields string) (any, error) {
	if paperID == "" {
		return nil, NewMissingParameterError("paper_id")
	}
	q := url.Values{}
	setString(q, "fields", fields)
	return c.getJSON(ctx, "paper/"+url.PathEscape(paperID), q, "paper", "get")
}

// GetPaperAuthors lists the authors of a paper.
// GET /paper/{paper_id}/authors.
func (c *Client) GetPaperAuthors(ctx context.Context, paperID string, params PageParams) (any, error) {
	if paperID == "" {
		return nil, NewMissingParameterError("paper_id")
	}
	return c.getJSON(ctx, "paper/"+url.PathEscape(paperID)+"/authors", params.values(), "paper", "authors")
}

// GetPaperCitations lists the citations of a paper.
// GET /paper/{paper_id}/citations.
func (c *Client) GetPaperCitations(ctx context.Context, paperID string, params PageParams) (any, error) {
	if paperID == "" {
		return nil, NewMissingParameterError("paper_id")
	}
	return c.getJSON(ctx, "paper/"+url.PathEscape(paperID)+"/citations", params.values(), "paper", "citations")
}

// GetPaperReferences lists the references of a paper.
// GET /paper/{paper_id}/references.
func (c *Client) GetPaperReferences(ctx context.Context, paperID string, params PageParams) (any, error) {
	if paperID == "" {
		return nil, NewMissingParameterError("paper_id")
	}
	return c.getJSON(ctx, "paper/"+url.PathEscape(paperID)+"/references", params.values(), "paper", "references")
}

// SearchSnippets runs the text-snippet search.
// GET /snippet/search.
func (c *Client) SearchSnippets(ctx context.Context, params SnippetSearchParams) (any, error) {
	q := url.Values{}
	setString(q, "query", params.Query)
	setInt(q, "limit", params.Limit)
	return c.getJSON(ctx, "snippet/search", q, "snippet", "search")
}

// batchBody builds the POST body for the batch endpoints, omitting "ids"
// when the slice is nil.
func batchBody(ids []string) map[string]any {
	body := map[string]any{}
	if ids != nil {
		body["ids"] = ids
	}
	return body
}

// getJSON issues a GET request against the endpoint path and decodes the body.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, resource, operation string) (any, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req, resource+"/"+operation)
}

// postJSON issues a POST request with a JSON body and decodes the response.
func (c *Client) postJSON(ctx context.Context, path string, q url.Values, body map[string]any, resource, operation string) (any, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, q, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, resource+"/"+operation)
}

// newRequest builds a request for {base}/path with the given query
// parameters. Path segments carrying identifiers are escaped by the callers.
func (c *Client) newRequest(ctx context.Context, method, path string, q url.Values, body io.Reader) (*http.Request, error) {
	u := c.config.BaseURL + "/" + path
	if encoded := q.Encode(); encoded != "" {
		u += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	return req, nil
}

// do executes the request, handles error statuses, and decodes the JSON body
// into a generic value. The endpoint label is used for metrics only.
func (c *Client) do(req *http.Request, endpoint string) (any, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordAPIRequestFailed(endpoint, "transport")
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.handleErrorResponse(resp); err != nil {
		c.metrics.RecordAPIRequestFailed(endpoint, fmt.Sprintf("http_%d", resp.StatusCode))
		return nil, err
	}

	var out any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		c.metrics.RecordAPIRequestFailed(endpoint, "decode")
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	c.metrics.RecordAPIRequest(endpoint, time.Since(start).Seconds())
	return out, nil
}

// errorResponse represents an error body from the Semantic Scholar API.
type errorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// handleErrorResponse turns a non-success response into an *APIError,
// preferring a structured upstream message when one is present.
func (c *Client) handleErrorResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Error bodies are small; cap the read at 1MB.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return NewAPIError(resp.StatusCode, "failed to read error response")
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		message := errResp.Error
		if message == "" {
			message = errResp.Message
		}
		if message == "" {
			message = string(body)
		}
		return NewAPIError(resp.StatusCode, message)
	}

	return NewAPIError(resp.StatusCode, string(body))
}
