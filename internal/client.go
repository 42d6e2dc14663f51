package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the production platform host, overridable via
// the DIALOGUE_API_URL environment variable.
const DefaultBaseURL = "https://api.usedialogue.com"

const apiPrefix = "/api/v1"

// Client performs read operations against the platform's REST API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a Client for the given base URL and bearer credential.
// Trailing slashes are stripped from the base URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

// Search returns one page of sessions matching the given free-text query
// and status. Empty query or status filters are omitted from the request.
func (c *Client) Search(ctx context.Context, query, status string, limit, offset int) (*SearchResult, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	if status != "" {
		params.Set("status", status)
	}
	params.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}

	var result SearchResult
	if err := c.get(ctx, apiPrefix+"/sessions?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSession fetches the full detail record for a session.
func (c *Client) GetSession(ctx context.Context, id string) (*SessionDetail, error) {
	var detail SessionDetail
	if err := c.get(ctx, apiPrefix+"/sessions/"+id, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetResponses fetches all participant responses for a session.
func (c *Client) GetResponses(ctx context.Context, id string) ([]ParticipantResponse, error) {
	var result struct {
		Responses []ParticipantResponse `json:"responses"`
	}
	if err := c.get(ctx, apiPrefix+"/sessions/"+id+"/responses", &result); err != nil {
		return nil, err
	}
	return result.Responses, nil
}

// GetSummary fetches the platform-generated summary for a session.
func (c *Client) GetSummary(ctx context.Context, id string) (*SessionSummaryResult, error) {
	var result SessionSummaryResult
	if err := c.get(ctx, apiPrefix+"/sessions/"+id+"/summary", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// apiError builds an APIError from a non-success response. The body is
// decoded best-effort; an undecodable body yields the generic message.
func (c *Client) apiError(status int, body []byte) *APIError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP status %d", status)
	}
	return &APIError{StatusCode: status, Message: msg}
}
