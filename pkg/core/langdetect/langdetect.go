// Package langdetect wraps the translate API's language-detection
// endpoint: given a piece of text it returns the most probable
// language code.
package langdetect

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"titlelookup/internal/constants"
	"titlelookup/internal/httpclient"
)

// --- Structs mirroring the detect endpoint JSON ---

// detectResponse mirrors the nested response shape:
// {"data": {"detections": [[{"language": "en", ...}]]}}
type detectResponse struct {
	Data struct {
		Detections [][]detection `json:"detections"`
	} `json:"data"`
}

type detection struct {
	Language   string  `json:"language"`
	IsReliable bool    `json:"isReliable,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Config holds the configuration for the detection client.
type Config struct {
	APIKey  string
	APIHost string
	URL     string // Optional: override default endpoint URL (used by tests)
}

// Detector handles communication with the language-detection endpoint.
type Detector struct {
	httpClient *httpclient.Client
}

// NewDetector creates a new detection client. Passing nil for
// httpClient uses http.DefaultClient.
func NewDetector(config Config, httpClient *http.Client) *Detector {
	endpoint := constants.DefaultDetectURL
	if config.URL != "" {
		endpoint = config.URL
	}
	return &Detector{
		httpClient: httpclient.New(endpoint, config.APIKey, config.APIHost, httpClient),
	}
}

// Detect posts the text as a form body and returns the top-confidence
// language code, upper-cased. A response without at least one detection
// is an error.
func (d *Detector) Detect(ctx context.Context, text string) (string, error) {
	form := url.Values{}
	form.Set("q", text)

	var response detectResponse
	if err := d.httpClient.PostForm(ctx, "", form, &response); err != nil {
		return "", fmt.Errorf("language detection failed: %w", err)
	}

	detections := response.Data.Detections
	if len(detections) == 0 || len(detections[0]) == 0 || detections[0][0].Language == "" {
		return "", fmt.Errorf("language detection returned no detections for %q", text)
	}

	return strings.ToUpper(detections[0][0].Language), nil
}
