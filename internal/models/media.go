// Package models contains the aggregated media types handed back to callers
package models

// MediaType identifies the kind of title being aggregated
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// TitleRequest identifies a single title to aggregate.
// Season and Episode are optional; zero means "not given".
type TitleRequest struct {
	Type    MediaType
	ID      int
	Season  int
	Episode int
}

// Person is a director or cast member reference
type Person struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profile_path,omitempty"`
}

// TitleRecord is the structured record intended for external persistence.
// Field names mirror the document shape the caller stores.
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

// Announcement is the full aggregation result: the formatted message
// plus the artwork URLs and the record for persistence. On the degraded
// error path Message carries the error text and Record is nil.
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
