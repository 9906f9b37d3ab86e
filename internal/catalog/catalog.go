// package catalog holds the static accounts, songs, and playlists the client browses.
package catalog

import (
	"strings"

	"github.com/desertthunder/tunedeck/internal/models"
)

var credentials = []models.Credential{
	{
		ID:         "music.lover@icloud.com",
		Password:   "Music2024!",
		Name:       "Music Lover",
		Contact:    "+86 138****8888",
		Membership: "Apple Music Member",
		Avatar:     "🎵",
	},
	{
		ID:         "+86 139****9999",
		Password:   "Apple123!",
		Name:       "Regular User",
		Contact:    "user@icloud.com",
		Membership: "Free User",
		Avatar:     "👤",
	},
}

var tracks = []models.Track{
	{Title: "Blinding Lights", Artist: "The Weeknd", Album: "After Hours", Cover: "🌟", Duration: 200},
	{Title: "Shape of You", Artist: "Ed Sheeran", Album: "÷ (Divide)", Cover: "🎵", Duration: 233},
	{Title: "Someone Like You", Artist: "Adele", Album: "21", Cover: "💝", Duration: 285},
	{Title: "Bohemian Rhapsody", Artist: "Queen", Album: "A Night at the Opera", Cover: "👑", Duration: 355},
	{Title: "Hotel California", Artist: "Eagles", Album: "Hotel California", Cover: "🦅", Duration: 391},
	{Title: "Imagine", Artist: "John Lennon", Album: "Imagine", Cover: "🕊️", Duration: 183},
}

var playlists = []models.Playlist{
	{Name: "My Favorites", Cover: "❤️", Count: 25, Creator: "My Music"},
	{Name: "Pop Hits", Cover: "🔥", Count: 50, Creator: "Apple Music"},
	{Name: "Classic Rock", Cover: "🎸", Count: 30, Creator: "Rock Picks"},
	{Name: "Easy Jazz", Cover: "🎷", Count: 20, Creator: "Jazz Time"},
}

// Credentials returns a copy of the account table.
func Credentials() []models.Credential {
	return append([]models.Credential(nil), credentials...)
}

// Tracks returns a copy of the song catalog in display order.
func Tracks() []models.Track {
	return append([]models.Track(nil), tracks...)
}

// Playlists returns a copy of the playlist catalog in display order.
func Playlists() []models.Playlist {
	return append([]models.Playlist(nil), playlists...)
}

// Authenticate finds the credential whose ID and password both match exactly.
//
// Comparison is case-sensitive plaintext; the table is mock data.
func Authenticate(table []models.Credential, id, password string) (models.Credential, bool) {
	for _, c := range table {
		if c.ID == id && c.Password == password {
			return c, true
		}
	}
	return models.Credential{}, false
}

// Search returns the tracks whose title, artist, or album contains query, ignoring case.
//
// Results keep catalog order and carry catalog indices.
// An empty query matches every track; callers that treat blank input as "no filter" check for it first.
func Search(tracks []models.Track, query string) []models.TrackRef {
	q := strings.ToLower(query)
	results := []models.TrackRef{}
	for i, t := range tracks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Artist), q) ||
			strings.Contains(strings.ToLower(t.Album), q) {
			results = append(results, models.TrackRef{Index: i, Track: t})
		}
	}
	return results
}

// Refs wraps every track with its index.
func Refs(tracks []models.Track) []models.TrackRef {
	refs := make([]models.TrackRef, len(tracks))
	for i, t := range tracks {
		refs[i] = models.TrackRef{Index: i, Track: t}
	}
	return refs
}
