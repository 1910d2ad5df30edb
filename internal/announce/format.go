// Package announce aggregates title metadata and renders the
// announcement message.
package announce

import (
	"fmt"
	"strings"

	"github.com/cinecast/cinecast/internal/models"
)

// maxOverviewLength caps overview text rendered by TruncateOverview
const maxOverviewLength = 600

// MessageData carries everything the formatter needs for one title
type MessageData struct {
	Type        models.MediaType
	Season      int
	Episode     int
	Title       string
	ReleaseDate string
	Plot        string
	Directors   []models.Person
	Stars       []models.Person
	Genres      []string
}

// FormatMessage renders the announcement text for a title. The layout is
// keyed on (type, season, episode): movies and series premieres get the
// full body; later seasons and episodes get only the header and genre
// tags so repeated announcements stay short and spoiler-free.
func FormatMessage(d MessageData) string {
	header := buildHeader(d)
	tags := GenreHashtags(d.Genres)

	if d.Season > 1 || d.Episode > 1 {
		return strings.TrimSpace(header + "\n\n" + tags)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	if d.Plot != "" {
		b.WriteString(d.Plot)
		b.WriteString("\n\n")
	}
	if stars := joinNames(d.Stars); stars != "" {
		fmt.Fprintf(&b, "<b>Stars:</b> %s\n\n", stars)
	}
	if directors := joinNames(d.Directors); directors != "" {
		fmt.Fprintf(&b, "<b>Directors:</b> %s\n\n", directors)
	}
	b.WriteString(tags)

	return strings.TrimSpace(b.String())
}

// buildHeader renders the title line. The year appears only for movies
// and series premieres, and only when a release date is known.
func buildHeader(d MessageData) string {
	year := releaseYear(d.ReleaseDate)

	switch d.Type {
	case models.MediaTypeMovie:
		if year != "" {
			return fmt.Sprintf("<b>%s (%s)</b> is now available!", d.Title, year)
		}
		return fmt.Sprintf("<b>%s</b> is now available!", d.Title)

	case models.MediaTypeTV:
		switch {
		case d.Season > 0 && d.Episode > 0:
			if d.Season == 1 && d.Episode == 1 && year != "" {
				return fmt.Sprintf("<b>%s (%s) S%02dE%02d</b> is now available!", d.Title, year, d.Season, d.Episode)
			}
			return fmt.Sprintf("<b>%s S%02dE%02d</b> is now available!", d.Title, d.Season, d.Episode)
		case d.Season > 0:
			if d.Season == 1 && year != "" {
				return fmt.Sprintf("<b>%s (%s) Season %d</b> is now available!", d.Title, year, d.Season)
			}
			return fmt.Sprintf("<b>%s Season %d</b> is now available!", d.Title, d.Season)
		default:
			return fmt.Sprintf("<b>%s</b> is now available!", d.Title)
		}

	default:
		return "Now Available!"
	}
}

// GenreHashtags renders genre names as space-joined hashtags with every
// non-alphanumeric character stripped: "Sci-Fi" becomes "#SciFi".
func GenreHashtags(genres []string) string {
	var tags []string
	for _, genre := range genres {
		cleaned := cleanGenreName(genre)
		if cleaned == "" {
			continue
		}
		tags = append(tags, "#"+cleaned)
	}
	return strings.Join(tags, " ")
}

// cleanGenreName strips every character outside [A-Za-z0-9]
func cleanGenreName(genre string) string {
	var b strings.Builder
	for _, c := range genre {
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// joinNames joins person names with ", "; "Unknown" when the list is
// empty, so the Stars/Directors lines always render in the full body.
func joinNames(people []models.Person) string {
	if len(people) == 0 {
		return "Unknown"
	}
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

// releaseYear returns the first four characters of an ISO date, "" when
// the date is absent or malformed.
func releaseYear(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return ""
}

// TruncateOverview caps overview text for display contexts that cannot
// carry a full synopsis.
func TruncateOverview(overview string) string {
	if len(overview) > maxOverviewLength {
		return overview[:maxOverviewLength] + "..."
	}
	return overview
}

// FormatDuration renders a runtime in minutes as "1h 02min" or "45min"
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %02dmin", hours, mins)
	}
	return fmt.Sprintf("%dmin", mins)
}
