package announce

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinecast/cinecast/internal/imdb"
	"github.com/cinecast/cinecast/internal/models"
	"github.com/cinecast/cinecast/internal/tmdb"
)

const movieDetailJSON = `{
	"id": 603,
	"imdb_id": "tt0133093",
	"title": "The Matrix",
	"overview": "Overview fallback text.",
	"poster_path": "/matrix.jpg",
	"release_date": "1999-03-30",
	"vote_average": 8.22,
	"genres": [{"name": "Action"}, {"name": "Sci-Fi & Fantasy"}],
	"spoken_languages": [{"english_name": "English"}]
}`

const creditsJSON = `{
	"cast": [
		{"name": "Keanu Reeves", "profile_path": "/kr.jpg"},
		{"name": "Laurence Fishburne"},
		{"name": "Carrie-Anne Moss"},
		{"name": "Hugo Weaving"},
		{"name": "Gloria Foster"},
		{"name": "Joe Pantoliano"}
	],
	"crew": [
		{"name": "Lana Wachowski", "job": "Director"},
		{"name": "Lilly Wachowski", "job": "Director"},
		{"name": "Joel Silver", "job": "Producer"}
	]
}`

const imagesJSON = `{
	"backdrops": [{"file_path": "/backdrop1.jpg"}],
	"posters": [{"file_path": "/poster1.jpg"}]
}`

const videosJSON = `{
	"results": [{"site": "YouTube", "type": "Trailer", "key": "vKQi3bIA1Bc"}]
}`

const imdbPageHTML = `<html><head>
<script type="application/ld+json">{"@type":"Movie","description":"Scraped plot from the film database.::credit"}</script>
</head><body></body></html>`

// newTestAggregator builds a pipeline against httptest TMDB and IMDb
// mocks. Pass broken paths to simulate endpoint failures.
func newTestAggregator(t *testing.T, tmdbHandler http.Handler, imdbHandler http.Handler) (*Aggregator, func()) {
	t.Helper()

	tmdbServer := httptest.NewServer(tmdbHandler)
	imdbServer := httptest.NewServer(imdbHandler)

	tmdbClient := tmdb.NewClient("test-key")
	tmdbClient.SetBaseURL(tmdbServer.URL)

	resolver := imdb.NewResolver(imdb.NewOMDbClient(""))
	resolver.SetBaseURL(imdbServer.URL)

	cleanup := func() {
		tmdbServer.Close()
		imdbServer.Close()
	}
	return NewAggregator(tmdbClient, resolver), cleanup
}

func movieMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/movie/603", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(movieDetailJSON))
	})
	mux.HandleFunc("/movie/603/images", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(imagesJSON))
	})
	mux.HandleFunc("/movie/603/credits", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(creditsJSON))
	})
	mux.HandleFunc("/movie/603/videos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(videosJSON))
	})
	return mux
}

func imdbMux() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(imdbPageHTML))
	})
}

func TestGetByIDMovie(t *testing.T) {
	agg, cleanup := newTestAggregator(t, movieMux(), imdbMux())
	defer cleanup()

	ann, err := agg.GetByID(models.TitleRequest{Type: models.MediaTypeMovie, ID: 603})
	require.NoError(t, err)
	require.NotNil(t, ann.Record)

	record := ann.Record
	assert.Equal(t, 603, record.TMDBID)
	assert.Equal(t, "movie", record.TMDBType)
	assert.Equal(t, "The Matrix", record.Title)
	assert.InDelta(t, 8.2, record.Rating, 0.0001)
	assert.Equal(t, "English", record.Language)
	assert.Equal(t, []string{"Action", "Sci-Fi", "Fantasy"}, record.Genres)
	assert.Equal(t, "1999-03-30", record.ReleaseDate)
	assert.Equal(t, "Scraped plot from the film database.", record.Story)
	assert.Len(t, record.Stars, 5)
	assert.Len(t, record.Directors, 2)
	assert.Equal(t, "https://www.youtube.com/watch?v=vKQi3bIA1Bc", record.TrailerURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/matrix.jpg", record.PosterURL)

	assert.Equal(t, record.PosterURL, ann.PosterURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/backdrop1.jpg", ann.BackdropURL)
	assert.Contains(t, ann.Message, "<b>The Matrix (1999)</b> is now available!")
	assert.Contains(t, ann.Message, "Scraped plot from the film database.")
	assert.Contains(t, ann.Message, "<b>Stars:</b> Keanu Reeves")
	assert.Contains(t, ann.Message, "<b>Directors:</b> Lana Wachowski, Lilly Wachowski")
	assert.Contains(t, ann.Message, "#Action #SciFi #Fantasy")
}

func TestGetByIDCoreFailureAborts(t *testing.T) {
	mux := movieMux()
	broken := http.NewServeMux()
	broken.HandleFunc("/movie/603/images", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	broken.Handle("/", mux)

	agg, cleanup := newTestAggregator(t, broken, imdbMux())
	defer cleanup()

	_, err := agg.GetByID(models.TitleRequest{Type: models.MediaTypeMovie, ID: 603})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching TMDB data")
}

func TestGetByIDTrailerFailureIsSoft(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/movie/603", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(movieDetailJSON))
	})
	mux.HandleFunc("/movie/603/images", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(imagesJSON))
	})
	mux.HandleFunc("/movie/603/credits", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(creditsJSON))
	})
	mux.HandleFunc("/movie/603/videos", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})

	agg, cleanup := newTestAggregator(t, mux, imdbMux())
	defer cleanup()

	ann, err := agg.GetByID(models.TitleRequest{Type: models.MediaTypeMovie, ID: 603})
	require.NoError(t, err)
	require.NotNil(t, ann.Record)
	assert.Empty(t, ann.TrailerURL)
	assert.Empty(t, ann.Record.TrailerURL)
}

func TestGetByIDPlotFallsBackToOverview(t *testing.T) {
	imdbDown := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	})

	agg, cleanup := newTestAggregator(t, movieMux(), imdbDown)
	defer cleanup()

	ann, err := agg.GetByID(models.TitleRequest{Type: models.MediaTypeMovie, ID: 603})
	require.NoError(t, err)
	require.NotNil(t, ann.Record)
	assert.Equal(t, "Overview fallback text.", ann.Record.Story)
	assert.Contains(t, ann.Message, "Overview fallback text.")
}

func TestGetByIDTVResolvesExternalID(t *testing.T) {
	externalIDsCalled := false
	mux := http.NewServeMux()
	mux.HandleFunc("/tv/1396", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": 1396,
			"name": "Breaking Bad",
			"overview": "A chemistry teacher turns to crime.",
			"first_air_date": "2008-01-20",
			"vote_average": 8.9,
			"genres": [{"name": "Drama"}],
			"created_by": [{"name": "Vince Gilligan"}]
		}`))
	})
	mux.HandleFunc("/tv/1396/images", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(imagesJSON))
	})
	mux.HandleFunc("/tv/1396/credits", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(creditsJSON))
	})
	mux.HandleFunc("/tv/1396/videos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(videosJSON))
	})
	mux.HandleFunc("/tv/1396/external_ids", func(w http.ResponseWriter, r *http.Request) {
		externalIDsCalled = true
		_, _ = w.Write([]byte(`{"imdb_id": "tt0903747"}`))
	})

	agg, cleanup := newTestAggregator(t, mux, imdbMux())
	defer cleanup()

	ann, err := agg.GetByID(models.TitleRequest{Type: models.MediaTypeTV, ID: 1396, Season: 1, Episode: 1})
	require.NoError(t, err)
	require.NotNil(t, ann.Record)
	assert.True(t, externalIDsCalled, "TV detail without imdb_id should trigger the external-ids lookup")
	assert.Equal(t, "Scraped plot from the film database.", ann.Record.Story)
	assert.Contains(t, ann.Message, "(2008) S01E01")
	// Created-by entries stand in for directors on series
	require.Len(t, ann.Record.Directors, 1)
	assert.Equal(t, "Vince Gilligan", ann.Record.Directors[0].Name)
}

func TestGetByIDLaterEpisodeMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tv/1396", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": 1396,
			"imdb_id": "tt0903747",
			"name": "Breaking Bad",
			"overview": "Plot text.",
			"first_air_date": "2008-01-20",
			"genres": [{"name": "Drama"}]
		}`))
	})
	mux.HandleFunc("/tv/1396/images", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(imagesJSON))
	})
	mux.HandleFunc("/tv/1396/credits", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(creditsJSON))
	})
	mux.HandleFunc("/tv/1396/videos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(videosJSON))
	})

	agg, cleanup := newTestAggregator(t, mux, imdbMux())
	defer cleanup()

	ann, err := agg.GetByID(models.TitleRequest{Type: models.MediaTypeTV, ID: 1396, Season: 2, Episode: 5})
	require.NoError(t, err)
	assert.Equal(t, "<b>Breaking Bad S02E05</b> is now available!\n\n#Drama", ann.Message)
}

func TestGetByIDDeterministic(t *testing.T) {
	agg, cleanup := newTestAggregator(t, movieMux(), imdbMux())
	defer cleanup()

	req := models.TitleRequest{Type: models.MediaTypeMovie, ID: 603}
	first, err := agg.GetByID(req)
	require.NoError(t, err)
	second, err := agg.GetByID(req)
	require.NoError(t, err)

	assert.Equal(t, first.Message, second.Message)
	assert.Equal(t, first.Record, second.Record)
}
