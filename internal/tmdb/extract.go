package tmdb

import (
	"strings"

	"github.com/cinecast/cinecast/internal/models"
)

// starsLimit caps the cast list carried into the record
const starsLimit = 5

// PosterImageURL builds the absolute poster/backdrop URL for a file path.
// Empty path yields empty URL.
func PosterImageURL(path string) string {
	if path == "" {
		return ""
	}
	return ImageBaseURL + path
}

// ProfileImageURL builds the absolute profile-shot URL for a file path
func ProfileImageURL(path string) string {
	if path == "" {
		return ""
	}
	return ProfileBaseURL + path
}

// ExtractLanguage joins the English display names of all spoken
// languages; "Unknown" when the payload carries none.
func ExtractLanguage(details *models.TMDBDetails) string {
	if len(details.SpokenLanguages) == 0 {
		return "Unknown"
	}

	names := make([]string, 0, len(details.SpokenLanguages))
	for _, lang := range details.SpokenLanguages {
		name := lang.EnglishName
		if name == "" {
			name = "Unknown"
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// ExtractGenres returns the genre names with "&"-joined names split into
// separate trimmed entries. Order preserved, no de-duplication.
func ExtractGenres(details *models.TMDBDetails) []string {
	var genres []string
	for _, genre := range details.Genres {
		if strings.Contains(genre.Name, "&") {
			for _, part := range strings.Split(genre.Name, "&") {
				genres = append(genres, strings.TrimSpace(part))
			}
		} else {
			genres = append(genres, genre.Name)
		}
	}
	return genres
}

// ExtractDirectors derives the director list: for movies, every crew
// member credited as Director; for TV shows, every created-by entry.
// Source order, never deduplicated.
func ExtractDirectors(mediaType models.MediaType, details *models.TMDBDetails, credits *models.TMDBCredits) []models.Person {
	var directors []models.Person

	switch mediaType {
	case models.MediaTypeMovie:
		if credits == nil {
			return nil
		}
		for _, member := range credits.Crew {
			if member.Job == "Director" {
				directors = append(directors, models.Person{
					Name:       member.Name,
					ProfileURL: ProfileImageURL(member.ProfilePath),
				})
			}
		}
	case models.MediaTypeTV:
		if details == nil {
			return nil
		}
		for _, creator := range details.CreatedBy {
			directors = append(directors, models.Person{
				Name:       creator.Name,
				ProfileURL: ProfileImageURL(creator.ProfilePath),
			})
		}
	}
	return directors
}

// ExtractStars returns the first entries of the cast list, capped, in
// source order. Empty cast yields nil.
func ExtractStars(credits *models.TMDBCredits) []models.Person {
	if credits == nil || len(credits.Cast) == 0 {
		return nil
	}

	limit := starsLimit
	if len(credits.Cast) < limit {
		limit = len(credits.Cast)
	}

	stars := make([]models.Person, 0, limit)
	for _, member := range credits.Cast[:limit] {
		stars = append(stars, models.Person{
			Name:       member.Name,
			ProfileURL: ProfileImageURL(member.ProfilePath),
		})
	}
	return stars
}

// ExtractPosterURL returns the absolute poster URL from the detail
// payload, empty when no poster path is present.
func ExtractPosterURL(details *models.TMDBDetails) string {
	return PosterImageURL(details.PosterPath)
}

// ExtractBackdropURL prefers the first backdrop of the images payload,
// falls back to its first poster, empty when neither exists.
func ExtractBackdropURL(images *models.TMDBImages) string {
	if images == nil {
		return ""
	}
	if len(images.Backdrops) > 0 && images.Backdrops[0].FilePath != "" {
		return PosterImageURL(images.Backdrops[0].FilePath)
	}
	if len(images.Posters) > 0 && images.Posters[0].FilePath != "" {
		return PosterImageURL(images.Posters[0].FilePath)
	}
	return ""
}

// ExtractTrailerURL scans the videos payload for the first YouTube
// trailer and builds its playback URL; empty when none matches.
func ExtractTrailerURL(videos *models.TMDBVideos) string {
	if videos == nil {
		return ""
	}
	for _, video := range videos.Results {
		if video.Site == "YouTube" && video.Type == "Trailer" {
			return "https://www.youtube.com/watch?v=" + video.Key
		}
	}
	return ""
}
