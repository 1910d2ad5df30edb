// Package imdb resolves an enriched plot synopsis for a title through an
// ordered best-effort chain keyed on the IMDb identifier.
package imdb

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cinecast/cinecast/internal/util"
)

const (
	// OMDb API base URL
	OMDbBaseURL = "https://www.omdbapi.com"
)

// OMDbMedia is the subset of an OMDb title response this chain reads
type OMDbMedia struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	IMDBID   string `json:"imdbID"`
	Plot     string `json:"Plot"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// OMDbClient handles interactions with the OMDb API
type OMDbClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewOMDbClient creates an OMDb client with an explicitly supplied key.
// An empty key disables this stage of the plot chain.
func NewOMDbClient(apiKey string) *OMDbClient {
	return &OMDbClient{
		client:  util.GetFastClient(),
		apiKey:  apiKey,
		baseURL: OMDbBaseURL,
	}
}

// SetBaseURL overrides the API base URL. Used by tests.
func (c *OMDbClient) SetBaseURL(base string) {
	c.baseURL = base
}

// IsConfigured returns true if the OMDb client is ready
func (c *OMDbClient) IsConfigured() bool {
	return c.apiKey != ""
}

// GetByIMDBID gets title information by IMDb id
func (c *OMDbClient) GetByIMDBID(imdbID string) (*OMDbMedia, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", imdbID)
	params.Set("plot", "short")

	endpoint := fmt.Sprintf("%s/?%s", c.baseURL, params.Encode())

	body, err := c.makeRequest(endpoint)
	if err != nil {
		return nil, fmt.Errorf("OMDb get failed: %w", err)
	}

	var media OMDbMedia
	if err := json.Unmarshal(body, &media); err != nil {
		return nil, fmt.Errorf("failed to parse OMDb response: %w", err)
	}

	if media.Response == "False" {
		return nil, fmt.Errorf("OMDb error: %s", media.Error)
	}

	return &media, nil
}

// GetPlot returns the plot text for an IMDb id, empty when OMDb carries
// none or marks it "N/A".
func (c *OMDbClient) GetPlot(imdbID string) (string, error) {
	media, err := c.GetByIMDBID(imdbID)
	if err != nil {
		return "", err
	}
	if media.Plot == "" || media.Plot == "N/A" {
		return "", nil
	}
	return media.Plot, nil
}

// makeRequest performs an HTTP request to the OMDb API
func (c *OMDbClient) makeRequest(endpoint string) ([]byte, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OMDb API returned status: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
