package imdb

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/cinecast/cinecast/internal/util"
)

const (
	// IMDb title page base URL
	IMDbBaseURL = "https://www.imdb.com"

	// IMDb rejects requests without a browser-looking agent
	imdbUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/121.0"

	// plotDelimiter separates the synopsis text from trailing attribution
	// in some sources ("plot text::author"); everything after it is cut.
	plotDelimiter = "::"
)

// Resolver resolves plot synopses from the film-information sources.
// Every lookup is best-effort: failures degrade to an empty string.
type Resolver struct {
	client  *http.Client
	omdb    *OMDbClient
	baseURL string
}

// NewResolver creates a plot resolver. The OMDb client may be
// unconfigured, in which case only the page scrape runs.
func NewResolver(omdb *OMDbClient) *Resolver {
	return &Resolver{
		client:  util.GetFastClient(),
		omdb:    omdb,
		baseURL: IMDbBaseURL,
	}
}

// SetBaseURL overrides the IMDb base URL. Used by tests.
func (r *Resolver) SetBaseURL(base string) {
	r.baseURL = base
}

// ResolvePlot walks the chain for an IMDb id: OMDb plot first, then the
// IMDb title page description. Returns "" when every stage comes up
// empty; never returns an error to the caller.
func (r *Resolver) ResolvePlot(imdbID string) string {
	if imdbID == "" {
		return ""
	}

	if r.omdb != nil && r.omdb.IsConfigured() {
		plot, err := r.omdb.GetPlot(imdbID)
		if err != nil {
			util.Debug("OMDb plot lookup failed, falling back to page scrape", "imdb", imdbID, "error", err)
		} else if plot != "" {
			return TruncatePlot(plot)
		}
	}

	plot, err := r.scrapePlot(imdbID)
	if err != nil {
		util.Debug("IMDb plot scrape failed", "imdb", imdbID, "error", err)
		return ""
	}
	return TruncatePlot(plot)
}

// ldTitle is the slice of an IMDb JSON-LD block this scrape reads
type ldTitle struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// scrapePlot fetches the IMDb title page and pulls the description out
// of its JSON-LD metadata block.
func (r *Resolver) scrapePlot(imdbID string) (string, error) {
	pageURL := fmt.Sprintf("%s/title/%s/", r.baseURL, imdbID)

	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", imdbUserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("IMDb returned status: %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse IMDb page: %w", err)
	}

	var description string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var block ldTitle
		if err := json.Unmarshal([]byte(s.Text()), &block); err != nil {
			return true
		}
		if block.Description != "" {
			description = html.UnescapeString(block.Description)
			return false
		}
		return true
	})

	if description == "" {
		return "", fmt.Errorf("no description found on IMDb page for %s", imdbID)
	}
	return description, nil
}

// TruncatePlot cuts the synopsis at the first "::" delimiter and trims
// surrounding whitespace.
func TruncatePlot(plot string) string {
	if idx := strings.Index(plot, plotDelimiter); idx >= 0 {
		plot = plot[:idx]
	}
	return strings.TrimSpace(plot)
}
