// Package models contains TMDB (The Movie Database) data structures
package models

// TMDBDetails contains movie/TV show information from TMDB.
// Every field is optional on the wire; zero values mean "absent".
type TMDBDetails struct {
	ID              int            `json:"id"`
	IMDBID          string         `json:"imdb_id"`
	Title           string         `json:"title"` // For movies
	Name            string         `json:"name"`  // For TV shows
	OriginalName    string         `json:"original_name"`
	Overview        string         `json:"overview"`
	Tagline         string         `json:"tagline"`
	PosterPath      string         `json:"poster_path"`
	BackdropPath    string         `json:"backdrop_path"`
	ReleaseDate     string         `json:"release_date"`   // For movies
	FirstAirDate    string         `json:"first_air_date"` // For TV shows
	VoteAverage     float64        `json:"vote_average"`
	VoteCount       int            `json:"vote_count"`
	Runtime         int            `json:"runtime"` // For movies (minutes)
	Status          string         `json:"status"`
	Genres          []TMDBGenre    `json:"genres"`
	SpokenLanguages []TMDBLanguage `json:"spoken_languages"`
	CreatedBy       []TMDBCreator  `json:"created_by"` // For TV shows
}

// GetDisplayTitle returns the movie title or the TV show name.
func (d *TMDBDetails) GetDisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}

// GetReleaseDate returns the movie release date or the TV first air date.
func (d *TMDBDetails) GetReleaseDate() string {
	if d.ReleaseDate != "" {
		return d.ReleaseDate
	}
	return d.FirstAirDate
}

// TMDBGenre represents a genre from TMDB
type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TMDBLanguage represents a spoken language from TMDB
type TMDBLanguage struct {
	ISO639      string `json:"iso_639_1"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
}

// TMDBCreator represents a "created by" entry on a TV show
type TMDBCreator struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
}

// TMDBImages contains the images endpoint payload
type TMDBImages struct {
	ID        int         `json:"id"`
	Backdrops []TMDBImage `json:"backdrops"`
	Posters   []TMDBImage `json:"posters"`
}

// TMDBImage represents a single backdrop or poster entry
type TMDBImage struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	VoteAverage float64 `json:"vote_average"`
}

// TMDBCredits contains cast and crew information
type TMDBCredits struct {
	ID   int        `json:"id"`
	Cast []TMDBCast `json:"cast"`
	Crew []TMDBCrew `json:"crew"`
}

// TMDBCast represents a cast member
type TMDBCast struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// TMDBCrew represents a crew member
type TMDBCrew struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path"`
}

// TMDBVideos contains the videos endpoint payload
type TMDBVideos struct {
	ID      int         `json:"id"`
	Results []TMDBVideo `json:"results"`
}

// TMDBVideo represents a single video entry (trailer, teaser, clip)
type TMDBVideo struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// TMDBExternalIDs contains the external-ids endpoint payload
type TMDBExternalIDs struct {
	ID     int    `json:"id"`
	IMDBID string `json:"imdb_id"`
	TVDBID int    `json:"tvdb_id"`
}

// TMDBSearchResult represents a search result page from TMDB
type TMDBSearchResult struct {
	Page         int         `json:"page"`
	TotalResults int         `json:"total_results"`
	TotalPages   int         `json:"total_pages"`
	Results      []TMDBMedia `json:"results"`
}

// TMDBMedia represents a movie or TV show in search results
type TMDBMedia struct {
	ID           int     `json:"id"`
	MediaType    string  `json:"media_type"` // "movie" or "tv"
	Title        string  `json:"title"`      // For movies
	Name         string  `json:"name"`       // For TV shows
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	Popularity   float64 `json:"popularity"`
}

// GetDisplayTitle returns the appropriate title for the media
func (m *TMDBMedia) GetDisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}

// GetReleaseYear returns the release year
func (m *TMDBMedia) GetReleaseYear() string {
	date := m.ReleaseDate
	if date == "" {
		date = m.FirstAirDate
	}
	if len(date) >= 4 {
		return date[:4]
	}
	return ""
}
