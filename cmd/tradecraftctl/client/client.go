// Package client provides an HTTP client for the TradeCraft matching API.
package client

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

	"github.com/shamanshetty/TradeCraft/internal/domain"
)

// MatchesResponse is the body of a matches listing.
type MatchesResponse struct {
	Data     []domain.Match `json:"data"`
	Metadata struct {
		Stats domain.MatchStats `json:"stats"`
	} `json:"metadata"`
}

// SkillInput is the body sent when creating or replacing a skill.
type SkillInput struct {
	Mode         domain.SkillMode          `json:"mode"`
	Name         string                    `json:"name"`
	Level        int                       `json:"level"`
	Availability []domain.AvailabilitySlot `json:"availability,omitempty"`
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// Client is an HTTP client for the TradeCraft API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result interface{}) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func userPath(userID string) string {
	return "/v1/users/" + url.PathEscape(userID)
}

// GetMatches retrieves ranked matches for a user.
func (c *Client) GetMatches(ctx context.Context, userID string, limit int, explain bool) (*MatchesResponse, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	params.Set("explain", strconv.FormatBool(explain))

	resp, err := c.doRequest(ctx, http.MethodGet, userPath(userID)+"/matches?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var result MatchesResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// PutSkill creates a skill when skillID is empty, and replaces it otherwise.
func (c *Client) PutSkill(ctx context.Context, userID, skillID string, skill SkillInput) (*domain.Skill, error) {
	jsonBody, err := json.Marshal(skill)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	method, path := http.MethodPost, userPath(userID)+"/skills"
	if skillID != "" {
		method, path = http.MethodPut, path+"/"+url.PathEscape(skillID)
	}

	resp, err := c.doRequest(ctx, method, path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}

	var stored domain.Skill
	if err := c.handleResponse(resp, &stored); err != nil {
		return nil, err
	}

	return &stored, nil
}

// DeleteSkill removes one of a user's skills.
func (c *Client) DeleteSkill(ctx context.Context, userID, skillID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, userPath(userID)+"/skills/"+url.PathEscape(skillID), nil)
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}
