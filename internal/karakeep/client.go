package karakeep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MrSnakeDoc/keepdash/internal/apperr"
	"github.com/MrSnakeDoc/keepdash/internal/logger"
)

// APIError is returned for any non-2xx answer of the Karakeep API.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("karakeep API error: %d %s", e.StatusCode, e.Status)
}

// Client is a thin read-only wrapper over the Karakeep REST API.
// It never retries and never caches.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     logger.Logger
}

// NewClient builds a client for baseURL (without the /api/v1 suffix).
func NewClient(baseURL, apiKey string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// never forward the bearer token to another host
				if len(via) > 0 && req.URL.Host != via[0].URL.Host {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		log: log,
	}
}

// SearchBookmarks runs a full text search.
func (c *Client) SearchBookmarks(ctx context.Context, query string, limit int) (*BookmarksResponse, error) {
	var out BookmarksResponse
	err := c.get(ctx, "/bookmarks/search", map[string]string{
		"q":     query,
		"limit": itoa(limit),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetBookmarks(ctx context.Context, f BookmarkFilters, cursor string, limit int) (*BookmarksResponse, error) {
	params := map[string]string{
		"archived":   boolParam(f.Archived),
		"favourited": boolParam(f.Favourited),
		"limit":      itoa(limit),
		"cursor":     cursor,
		"lists":      strings.Join(f.Lists, ","),
	}
	var out BookmarksResponse
	if err := c.get(ctx, "/bookmarks", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetListBookmarks(ctx context.Context, listID string, f ListFilters, cursor string, limit int) (*BookmarksResponse, error) {
	params := map[string]string{
		"sortOrder":      f.SortOrder,
		"limit":          itoa(limit),
		"cursor":         cursor,
		"includeContent": boolParam(f.IncludeContent),
	}
	var out BookmarksResponse
	if err := c.get(ctx, "/lists/"+url.PathEscape(listID)+"/bookmarks", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetLists(ctx context.Context) (*ListsResponse, error) {
	var out ListsResponse
	if err := c.get(ctx, "/lists", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTags(ctx context.Context) (*TagsResponse, error) {
	var out TagsResponse
	if err := c.get(ctx, "/tags", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get issues GET {base}/api/v1{endpoint}. Empty params are dropped.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	u, err := url.Parse(c.baseURL + "/api/v1" + endpoint)
	if err != nil {
		return apperr.Wrap(apperr.CodeTransport, "invalid karakeep url", err)
	}
	q := u.Query()
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return apperr.Wrap(apperr.CodeTransport, "failed to create karakeep request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.Wrap(apperr.CodeTransport, "karakeep request failed", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.log.Debug("karakeep request",
		logger.String("endpoint", endpoint),
		logger.Int("status", resp.StatusCode),
		logger.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Status: statusText(resp)}
		return apperr.Wrap(apperr.CodeTransport, apiErr.Error(), apiErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(apperr.CodeTransport, "failed to decode karakeep response", err)
	}
	return nil
}

// statusText returns the reason phrase without the leading code.
func statusText(resp *http.Response) string {
	if _, text, ok := strings.Cut(resp.Status, " "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func itoa(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func boolParam(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
