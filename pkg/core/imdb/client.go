package imdb

import (
	"context"
	"fmt"
	"net/http"

	"titlelookup/internal/constants"
	"titlelookup/internal/httpclient"
)

// Config holds the configuration for the metadata API client.
type Config struct {
	APIKey  string
	APIHost string
	BaseURL string // Optional: override default base URL (used by tests)
}

// Client handles communication with the IMDb metadata API.
type Client struct {
	httpClient *httpclient.Client
}

// NewClient creates a new metadata API client. Passing nil for
// httpClient uses http.DefaultClient.
func NewClient(config Config, httpClient *http.Client) *Client {
	baseURL := constants.DefaultMetadataBaseURL
	if config.BaseURL != "" {
		baseURL = config.BaseURL
	}
	return &Client{
		httpClient: httpclient.New(baseURL, config.APIKey, config.APIHost, httpClient),
	}
}

// SearchTitles queries /title/find and returns the raw list of hits.
func (c *Client) SearchTitles(ctx context.Context, q Query) ([]TitleSearchHit, error) {
	var response searchResponse
	if err := c.httpClient.Get(ctx, constants.TitleSearchPath, q, &response); err != nil {
		return nil, fmt.Errorf("title search failed: %w", err)
	}
	return response.Results, nil
}

// GetCredits fetches the base metadata, cast and crew for one title.
func (c *Client) GetCredits(ctx context.Context, q Query) (*TitleDetail, error) {
	var response TitleDetail
	if err := c.httpClient.Get(ctx, constants.TitleCreditsPath, q, &response); err != nil {
		return nil, fmt.Errorf("credits lookup failed: %w", err)
	}
	return &response, nil
}

// GetAlternateTitles fetches the localized variant names for one title.
func (c *Client) GetAlternateTitles(ctx context.Context, q Query) (*AlternateTitlesResponse, error) {
	var response AlternateTitlesResponse
	if err := c.httpClient.Get(ctx, constants.AlternateTitlesPath, q, &response); err != nil {
		return nil, fmt.Errorf("alternate titles lookup failed: %w", err)
	}
	return &response, nil
}
