// Package tmdb provides the TMDB (The Movie Database) API client used as
// the primary metadata source.
package tmdb

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cinecast/cinecast/internal/models"
	"github.com/cinecast/cinecast/internal/util"
)

const (
	// TMDB API base URL
	BaseURL = "https://api.themoviedb.org/3"
	// TMDB image base URL for posters and backdrops
	ImageBaseURL = "https://image.tmdb.org/t/p/original"
	// TMDB image base URL for cast/crew profile shots
	ProfileBaseURL = "https://image.tmdb.org/t/p/w500"

	// Locale sent on every request
	language = "en-US"
	// Extra image language variants requested from the images endpoint
	imageLanguages = "en,hi"
)

// Client handles interactions with the TMDB API
type Client struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewClient creates a TMDB client with an explicitly supplied API key.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		util.Debug("TMDB API key not set, lookups will be rejected by the server")
	}

	return &Client{
		client:  util.GetSharedClient(),
		apiKey:  apiKey,
		baseURL: BaseURL,
	}
}

// SetBaseURL overrides the API base URL. Used by tests.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = base
}

// IsConfigured returns true if the TMDB API key is configured
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// DetailURL builds the detail endpoint URL for a title.
func (c *Client) DetailURL(mediaType models.MediaType, id int) string {
	return fmt.Sprintf("%s/%s/%d?language=%s", c.baseURL, mediaType, id, language)
}

// ImagesURL builds the images endpoint URL for a title.
func (c *Client) ImagesURL(mediaType models.MediaType, id int) string {
	return fmt.Sprintf("%s/%s/%d/images?language=%s&include_image_language=%s",
		c.baseURL, mediaType, id, language, imageLanguages)
}

// CreditsURL builds the credits endpoint URL for a title.
func (c *Client) CreditsURL(mediaType models.MediaType, id int) string {
	return fmt.Sprintf("%s/%s/%d/credits?language=%s", c.baseURL, mediaType, id, language)
}

// VideosURL builds the videos endpoint URL for a title.
func (c *Client) VideosURL(mediaType models.MediaType, id int) string {
	return fmt.Sprintf("%s/%s/%d/videos?language=%s", c.baseURL, mediaType, id, language)
}

// ExternalIDsURL builds the external-ids endpoint URL for a title.
func (c *Client) ExternalIDsURL(mediaType models.MediaType, id int) string {
	return fmt.Sprintf("%s/%s/%d/external_ids", c.baseURL, mediaType, id)
}

// GetDetails fetches the detail payload for a movie or TV show
func (c *Client) GetDetails(mediaType models.MediaType, id int) (*models.TMDBDetails, error) {
	body, err := c.makeRequest(c.DetailURL(mediaType, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get %s details: %w", mediaType, err)
	}

	var details models.TMDBDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to parse %s details: %w", mediaType, err)
	}

	return &details, nil
}

// GetImages fetches the images payload for a movie or TV show
func (c *Client) GetImages(mediaType models.MediaType, id int) (*models.TMDBImages, error) {
	body, err := c.makeRequest(c.ImagesURL(mediaType, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get images: %w", err)
	}

	var images models.TMDBImages
	if err := json.Unmarshal(body, &images); err != nil {
		return nil, fmt.Errorf("failed to parse images: %w", err)
	}

	return &images, nil
}

// GetCredits fetches cast and crew for a movie or TV show
func (c *Client) GetCredits(mediaType models.MediaType, id int) (*models.TMDBCredits, error) {
	body, err := c.makeRequest(c.CreditsURL(mediaType, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get credits: %w", err)
	}

	var credits models.TMDBCredits
	if err := json.Unmarshal(body, &credits); err != nil {
		return nil, fmt.Errorf("failed to parse credits: %w", err)
	}

	return &credits, nil
}

// GetVideos fetches the videos payload for a movie or TV show
func (c *Client) GetVideos(mediaType models.MediaType, id int) (*models.TMDBVideos, error) {
	body, err := c.makeRequest(c.VideosURL(mediaType, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get videos: %w", err)
	}

	var videos models.TMDBVideos
	if err := json.Unmarshal(body, &videos); err != nil {
		return nil, fmt.Errorf("failed to parse videos: %w", err)
	}

	return &videos, nil
}

// GetExternalIDs fetches the external identifiers for a movie or TV show
func (c *Client) GetExternalIDs(mediaType models.MediaType, id int) (*models.TMDBExternalIDs, error) {
	body, err := c.makeRequest(c.ExternalIDsURL(mediaType, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get external ids: %w", err)
	}

	var ids models.TMDBExternalIDs
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("failed to parse external ids: %w", err)
	}

	return &ids, nil
}

// SearchMovies searches for movies by free-text name. When year is
// non-empty, results whose release date does not start with that year are
// filtered out; a filter that eliminates every candidate means not found.
func (c *Client) SearchMovies(query, year string) (*models.Match, error) {
	endpoint := fmt.Sprintf("%s/search/movie?query=%s&language=%s&page=1",
		c.baseURL, url.QueryEscape(query), language)

	body, err := c.makeRequest(endpoint)
	if err != nil {
		return nil, fmt.Errorf("TMDB movie search failed: %w", err)
	}

	var result models.TMDBSearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse TMDB response: %w", err)
	}

	return pickMatch(result.Results, year, models.MediaTypeMovie), nil
}

// SearchTV searches for TV shows by free-text name, filtering on the
// first-air year when given.
func (c *Client) SearchTV(query, year string) (*models.Match, error) {
	endpoint := fmt.Sprintf("%s/search/tv?query=%s&language=%s&page=1",
		c.baseURL, url.QueryEscape(query), language)

	body, err := c.makeRequest(endpoint)
	if err != nil {
		return nil, fmt.Errorf("TMDB TV search failed: %w", err)
	}

	var result models.TMDBSearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse TMDB response: %w", err)
	}

	return pickMatch(result.Results, year, models.MediaTypeTV), nil
}

// pickMatch applies the year filter and takes the first surviving result.
// Returns nil when nothing survives.
func pickMatch(results []models.TMDBMedia, year string, mediaType models.MediaType) *models.Match {
	if year != "" {
		var filtered []models.TMDBMedia
		for _, r := range results {
			if r.GetReleaseYear() == year {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	if len(results) == 0 {
		return nil
	}

	return &models.Match{ID: results[0].ID, MediaType: mediaType}
}

// makeRequest performs an authenticated request against the TMDB API
func (c *Client) makeRequest(endpoint string) ([]byte, error) {
	separator := "?"
	if strings.Contains(endpoint, "?") {
		separator = "&"
	}
	endpointWithKey := endpoint + separator + "api_key=" + c.apiKey

	req, err := http.NewRequest("GET", endpointWithKey, nil)
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
		return nil, fmt.Errorf("TMDB API returned status: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
