package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrNoGithubUser = errors.New("github username is not configured")

// ContributionsClient talks to the public contributions-graph API for
// a single configured GitHub username. Contributions proxies the raw
// payload; TotalContributions folds the per-year counts into one
// scalar for the stats record.
type ContributionsClient struct {
	Username   string
	BaseURL    string
	HTTPClient *http.Client
}

func NewContributionsClient(username, baseURL string) *ContributionsClient {
	return &ContributionsClient{
		Username: username,
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Contributions fetches the raw contributions JSON for the configured
// username.
func (c *ContributionsClient) Contributions(ctx context.Context) (json.RawMessage, error) {
	if strings.TrimSpace(c.Username) == "" {
		return nil, ErrNoGithubUser
	}

	url := fmt.Sprintf("%s/%s", c.BaseURL, c.Username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("contributions api http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// TotalContributions sums the per-year totals of the contributions
// payload into a single count.
func (c *ContributionsClient) TotalContributions(ctx context.Context) (float64, error) {
	raw, err := c.Contributions(ctx)
	if err != nil {
		return 0, err
	}

	var payload struct {
		Total map[string]float64 `json:"total"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return 0, err
	}

	var sum float64
	for _, count := range payload.Total {
		sum += count
	}
	return sum, nil
}
