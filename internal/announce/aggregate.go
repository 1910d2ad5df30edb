package announce

import (
	"math"

	"github.com/pkg/errors"

	"github.com/cinecast/cinecast/internal/imdb"
	"github.com/cinecast/cinecast/internal/models"
	"github.com/cinecast/cinecast/internal/tmdb"
	"github.com/cinecast/cinecast/internal/util"
)

// Aggregator runs the per-title fetch-and-reconcile pipeline. It holds
// no per-call state; one Aggregator is safe for concurrent use.
type Aggregator struct {
	tmdb  *tmdb.Client
	plots *imdb.Resolver
}

// NewAggregator wires the primary TMDB client and the secondary-source
// plot resolver together.
func NewAggregator(tmdbClient *tmdb.Client, plots *imdb.Resolver) *Aggregator {
	return &Aggregator{
		tmdb:  tmdbClient,
		plots: plots,
	}
}

// GetByID aggregates one title. The three core lookups (detail, images,
// credits) run concurrently and all must succeed; any transport failure
// aborts the aggregation. The trailer lookup, the TV external-id lookup
// and the plot chain are best-effort and degrade silently.
func (a *Aggregator) GetByID(req models.TitleRequest) (*models.Announcement, error) {
	var (
		details *models.TMDBDetails
		images  *models.TMDBImages
		credits *models.TMDBCredits

		detailsErr, imagesErr, creditsErr error
	)

	util.ParallelExecute(3,
		func() { details, detailsErr = a.tmdb.GetDetails(req.Type, req.ID) },
		func() { images, imagesErr = a.tmdb.GetImages(req.Type, req.ID) },
		func() { credits, creditsErr = a.tmdb.GetCredits(req.Type, req.ID) },
	)

	if detailsErr != nil {
		return nil, errors.Wrap(detailsErr, "fetching TMDB data")
	}
	if imagesErr != nil {
		return nil, errors.Wrap(imagesErr, "fetching TMDB data")
	}
	if creditsErr != nil {
		return nil, errors.Wrap(creditsErr, "fetching TMDB data")
	}

	// The plot chain uses its own synchronous client, so it is handed to
	// the worker pool and joined after the trailer lookup finishes.
	imdbID := a.resolveIMDBID(req, details)
	plotCh := make(chan string, 1)
	util.GetEnrichPool().Submit(func() {
		plotCh <- a.plots.ResolvePlot(imdbID)
	})

	trailerURL := a.fetchTrailer(req)

	plot := <-plotCh
	if plot == "" {
		plot = details.Overview
	}

	directors := tmdb.ExtractDirectors(req.Type, details, credits)
	stars := tmdb.ExtractStars(credits)
	genres := tmdb.ExtractGenres(details)
	releaseDate := details.GetReleaseDate()
	title := details.GetDisplayTitle()

	message := FormatMessage(MessageData{
		Type:        req.Type,
		Season:      req.Season,
		Episode:     req.Episode,
		Title:       title,
		ReleaseDate: releaseDate,
		Plot:        plot,
		Directors:   directors,
		Stars:       stars,
		Genres:      genres,
	})

	record := &models.TitleRecord{
		TMDBID:      req.ID,
		TMDBType:    string(req.Type),
		Title:       title,
		Rating:      math.Round(details.VoteAverage*10) / 10,
		Language:    tmdb.ExtractLanguage(details),
		Genres:      genres,
		ReleaseDate: releaseDate,
		Story:       plot,
		Directors:   directors,
		Stars:       stars,
		TrailerURL:  trailerURL,
		PosterURL:   tmdb.ExtractPosterURL(details),
	}

	return &models.Announcement{
		Message:     message,
		PosterURL:   record.PosterURL,
		BackdropURL: tmdb.ExtractBackdropURL(images),
		TrailerURL:  trailerURL,
		Record:      record,
	}, nil
}

// resolveIMDBID takes the external id from the detail payload; a TV show
// without one gets a single best-effort external-ids lookup.
func (a *Aggregator) resolveIMDBID(req models.TitleRequest, details *models.TMDBDetails) string {
	if details.IMDBID != "" {
		return details.IMDBID
	}
	if req.Type != models.MediaTypeTV {
		return ""
	}

	ids, err := a.tmdb.GetExternalIDs(req.Type, req.ID)
	if err != nil {
		util.Debug("external id lookup failed", "id", req.ID, "error", err)
		return ""
	}
	return ids.IMDBID
}

// fetchTrailer runs the best-effort videos lookup after the core calls
func (a *Aggregator) fetchTrailer(req models.TitleRequest) string {
	videos, err := a.tmdb.GetVideos(req.Type, req.ID)
	if err != nil {
		util.Debug("trailer lookup failed", "id", req.ID, "error", err)
		return ""
	}
	return tmdb.ExtractTrailerURL(videos)
}
