package cinecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinecast/cinecast/internal/models"
	"github.com/cinecast/cinecast/pkg/cinecast/types"
)

func TestNewClient(t *testing.T) {
	client := New(Config{TMDBAPIKey: "k"})
	require.NotNil(t, client)
	require.NotNil(t, client.aggregator)
}

func TestFromInternalAnnouncement(t *testing.T) {
	internal := &models.Announcement{
		Message:     "msg",
		PosterURL:   "poster",
		BackdropURL: "backdrop",
		TrailerURL:  "trailer",
		Record: &models.TitleRecord{
			TMDBID:    603,
			TMDBType:  "movie",
			Title:     "The Matrix",
			Directors: []models.Person{{Name: "Lana Wachowski", ProfileURL: "p"}},
			Stars:     []models.Person{{Name: "Keanu Reeves"}},
			Genres:    []string{"Action"},
		},
	}

	public := types.FromInternalAnnouncement(internal)
	require.NotNil(t, public)
	assert.Equal(t, "msg", public.Message)
	assert.Equal(t, "backdrop", public.BackdropURL)
	require.NotNil(t, public.Record)
	assert.Equal(t, 603, public.Record.TMDBID)
	require.Len(t, public.Record.Directors, 1)
	assert.Equal(t, "Lana Wachowski", public.Record.Directors[0].Name)

	// Degraded results keep a nil record through the conversion
	degraded := types.FromInternalAnnouncement(&models.Announcement{Message: "Error: boom"})
	require.NotNil(t, degraded)
	assert.Nil(t, degraded.Record)

	assert.Nil(t, types.FromInternalAnnouncement(nil))
}

func TestMediaTypeConversion(t *testing.T) {
	assert.Equal(t, models.MediaTypeMovie, types.MediaTypeMovie.ToInternal())
	assert.Equal(t, models.MediaTypeTV, types.MediaTypeTV.ToInternal())
}
