// Package types defines the public types returned by the cinecast client
package types

import "github.com/cinecast/cinecast/internal/models"

// MediaType identifies the kind of title
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// Person is a director or cast member reference
type Person struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profile_path,omitempty"`
}

// TitleRecord is the structured record intended for external persistence
type TitleRecord struct {
	TMDBID      int      `json:"tmdb_id"`
	TMDBType    string   `json:"tmdb_type"`
	Title       string   `json:"title"`
	Rating      float64  `json:"rating"`
	Language    string   `json:"language"`
	Genres      []string `json:"genre"`
	ReleaseDate string   `json:"release_date"`
	Story       string   `json:"story"`
	Directors   []Person `json:"directors"`
	Stars       []Person `json:"stars"`
	TrailerURL  string   `json:"trailer_url,omitempty"`
	PosterURL   string   `json:"poster_url,omitempty"`
}

// Announcement is the aggregation result. On the degraded error path
// Message carries "Error: <description>" and Record is nil.
type Announcement struct {
	Message     string
	PosterURL   string
	BackdropURL string
	TrailerURL  string
	Record      *TitleRecord
}

// Match is a resolved name-search result
type Match struct {
	ID        int
	MediaType MediaType
}

// ToInternal converts a public media type to the internal one
func (t MediaType) ToInternal() models.MediaType {
	return models.MediaType(t)
}

// FromInternalAnnouncement converts an internal announcement to the public type
func FromInternalAnnouncement(a *models.Announcement) *Announcement {
	if a == nil {
		return nil
	}
	return &Announcement{
		Message:     a.Message,
		PosterURL:   a.PosterURL,
		BackdropURL: a.BackdropURL,
		TrailerURL:  a.TrailerURL,
		Record:      fromInternalRecord(a.Record),
	}
}

func fromInternalRecord(r *models.TitleRecord) *TitleRecord {
	if r == nil {
		return nil
	}
	return &TitleRecord{
		TMDBID:      r.TMDBID,
		TMDBType:    r.TMDBType,
		Title:       r.Title,
		Rating:      r.Rating,
		Language:    r.Language,
		Genres:      r.Genres,
		ReleaseDate: r.ReleaseDate,
		Story:       r.Story,
		Directors:   fromInternalPeople(r.Directors),
		Stars:       fromInternalPeople(r.Stars),
		TrailerURL:  r.TrailerURL,
		PosterURL:   r.PosterURL,
	}
}

func fromInternalPeople(people []models.Person) []Person {
	if people == nil {
		return nil
	}
	out := make([]Person, 0, len(people))
	for _, p := range people {
		out = append(out, Person{Name: p.Name, ProfileURL: p.ProfileURL})
	}
	return out
}

// FromInternalMatch converts an internal search match to the public type
func FromInternalMatch(m *models.Match) *Match {
	if m == nil {
		return nil
	}
	return &Match{ID: m.ID, MediaType: MediaType(m.MediaType)}
}
