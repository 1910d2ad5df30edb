// Package cinecast provides the public API for aggregating movie/TV
// metadata into announcement messages. It can be used as a library in
// other Go projects.
package cinecast

import (
	"fmt"
	"os"

	"github.com/cinecast/cinecast/internal/announce"
	"github.com/cinecast/cinecast/internal/imdb"
	"github.com/cinecast/cinecast/internal/models"
	"github.com/cinecast/cinecast/internal/tmdb"
	"github.com/cinecast/cinecast/internal/util"
	"github.com/cinecast/cinecast/pkg/cinecast/types"
)

// Config holds the credentials and switches for a client. No
// process-global state is read outside of NewFromEnv.
type Config struct {
	// TMDBAPIKey authenticates against the primary metadata source.
	TMDBAPIKey string
	// OMDbAPIKey enables the OMDb stage of the plot chain. Optional.
	OMDbAPIKey string
	// Debug enables debug-level logging.
	Debug bool
}

// Client aggregates title metadata from TMDB and the film-information
// sources. One Client is safe for concurrent use; every call is an
// independent, stateless fetch.
type Client struct {
	aggregator *announce.Aggregator
	tmdb       *tmdb.Client
}

// New creates a client from an explicit configuration
func New(cfg Config) *Client {
	util.SetDebugMode(cfg.Debug)
	if util.Logger == nil {
		util.InitLogger()
	}

	tmdbClient := tmdb.NewClient(cfg.TMDBAPIKey)
	resolver := imdb.NewResolver(imdb.NewOMDbClient(cfg.OMDbAPIKey))

	return &Client{
		aggregator: announce.NewAggregator(tmdbClient, resolver),
		tmdb:       tmdbClient,
	}
}

// NewFromEnv creates a client configured from the TMDB_API_KEY and
// OMDB_API_KEY environment variables.
func NewFromEnv() *Client {
	return New(Config{
		TMDBAPIKey: os.Getenv("TMDB_API_KEY"),
		OMDbAPIKey: os.Getenv("OMDB_API_KEY"),
	})
}

// GetByID aggregates one title and renders its announcement. Season and
// episode are optional; pass 0 when not applicable. The returned
// Announcement is never nil: on failure Message carries
// "Error: <description>" and Record is nil, so callers distinguish only
// presence or absence of a populated record.
func (c *Client) GetByID(mediaType types.MediaType, id, season, episode int) (result *types.Announcement) {
	defer func() {
		if r := recover(); r != nil {
			util.Errorf("unknown error aggregating title %d: %v", id, r)
			result = &types.Announcement{Message: fmt.Sprintf("Error: %v", r)}
		}
	}()

	ann, err := c.aggregator.GetByID(models.TitleRequest{
		Type:    mediaType.ToInternal(),
		ID:      id,
		Season:  season,
		Episode: episode,
	})
	if err != nil {
		util.Errorf("error fetching TMDB data: %v", err)
		return &types.Announcement{Message: "Error: " + err.Error()}
	}

	return types.FromInternalAnnouncement(ann)
}

// FindMovie resolves a free-text movie name (and optional release year)
// to a TMDB identifier. The boolean is false when the query fails or
// nothing matches after the year filter; that is "not found", never an
// error.
func (c *Client) FindMovie(name, year string) (*types.Match, bool) {
	match, err := c.tmdb.SearchMovies(name, year)
	if err != nil {
		util.Errorf("error searching TMDB movie by name: %v", err)
		return nil, false
	}
	if match == nil {
		return nil, false
	}
	return types.FromInternalMatch(match), true
}

// FindTV resolves a free-text TV show name (and optional first-air year)
// to a TMDB identifier, with the same not-found semantics as FindMovie.
func (c *Client) FindTV(name, year string) (*types.Match, bool) {
	match, err := c.tmdb.SearchTV(name, year)
	if err != nil {
		util.Errorf("error searching TMDB TV by name: %v", err)
		return nil, false
	}
	if match == nil {
		return nil, false
	}
	return types.FromInternalMatch(match), true
}
