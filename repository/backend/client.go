package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/andrifals/gasstore/cmd/config"
)

// Client talks to the hosted table API (PostgREST-style CRUD over
// HTTPS). The static publishable key is attached to every request as
// both apikey and bearer token. All persisted entities live behind
// this boundary; the service holds no database connection of its own.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	timeout time.Duration
}

// Query describes a structured read. Zero values are omitted from the
// request: empty Select means all columns, empty Order means backend
// order.
type Query struct {
	Select string
	Eq     map[string]string
	Order  string
	Limit  int
}

// APIError is a non-2xx answer from the table API. The body is kept
// verbatim so operators see the backend's own message.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("table api error %d: %s", e.StatusCode, e.Body)
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.URL, "/"),
		apiKey:  cfg.Backend.APIKey,
		client: &http.Client{
			Timeout: cfg.Backend.RequestTimeout,
		},
		timeout: cfg.Backend.RequestTimeout,
	}
}

func (c *Client) tableURL(table string, q Query) string {
	params := url.Values{}
	if q.Select != "" {
		params.Set("select", q.Select)
	}
	for col, val := range q.Eq {
		params.Set(col, "eq."+val)
	}
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	u := c.baseURL + "/rest/v1/" + table
	if enc := params.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

func (c *Client) do(req *http.Request) ([]byte, *http.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, resp, nil
}

// Select runs a structured read against table and decodes the JSON
// array into dest (a pointer to a slice).
func (c *Client) Select(ctx context.Context, table string, q Query, dest interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tableURL(table, q), nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	body, _, err := c.do(req)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dest)
}

// Count probes the row count of table without transferring rows. It
// issues a HEAD request with Prefer: count=exact and parses the total
// from the Content-Range header ("0-24/57" or "*/0").
func (c *Client) Count(ctx context.Context, table string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.tableURL(table, Query{}), nil)
	if err != nil {
		return 0, err
	}
	c.setHeaders(req)
	req.Header.Set("Prefer", "count=exact")

	_, resp, err := c.do(req)
	if err != nil {
		return 0, err
	}

	cr := resp.Header.Get("Content-Range")
	idx := strings.LastIndex(cr, "/")
	if idx < 0 || idx == len(cr)-1 {
		return 0, fmt.Errorf("missing count in Content-Range %q", cr)
	}
	total := cr[idx+1:]
	if total == "*" {
		return 0, fmt.Errorf("backend did not resolve exact count")
	}
	return strconv.ParseInt(total, 10, 64)
}

// Insert writes one record. When dest is non-nil the inserted
// representation (a JSON array) is decoded into it.
func (c *Client) Insert(ctx context.Context, table string, record interface{}, dest interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table, Query{}), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)
	if dest != nil {
		req.Header.Set("Prefer", "return=representation")
	} else {
		req.Header.Set("Prefer", "return=minimal")
	}

	body, _, err := c.do(req)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return json.Unmarshal(body, dest)
}

// Update patches all rows matching the equality filters.
func (c *Client) Update(ctx context.Context, table string, eq map[string]string, patch interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(patch)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.tableURL(table, Query{Eq: eq}), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)
	req.Header.Set("Prefer", "return=minimal")

	_, _, err = c.do(req)
	return err
}

// Raw issues a bare GET against the REST surface, bypassing the query
// builder entirely. pathAndQuery is everything after the base URL,
// e.g. "/rest/v1/orders?select=*&limit=100". This is the last-resort
// retrieval path; it shares nothing with the structured methods beyond
// the credential headers.
func (c *Client) Raw(ctx context.Context, pathAndQuery string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if !strings.HasPrefix(pathAndQuery, "/") {
		pathAndQuery = "/" + pathAndQuery
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathAndQuery, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	body, _, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return body, nil
}
