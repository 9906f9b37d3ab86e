package session

import "github.com/desertthunder/tunedeck/internal/models"

// View is the render target the [Controller] writes to, one method per screen region.
//
// The controller calls every method unconditionally; an implementation without a given region
// simply ignores the call.
type View interface {
	ShowPage(page models.Page)                        // ShowPage makes exactly one top-level page visible
	ShowTab(tab models.Tab)                           // ShowTab makes exactly one main-page section visible
	SetBusy(form models.Form, busy bool)              // SetBusy disables or re-enables a submit control
	SetMaskedID(masked string)                        // SetMaskedID shows the masked Apple ID on the two-factor page
	SetUser(user models.Credential)                   // SetUser fills the user-info display
	SetTrending(tracks []models.TrackRef)             // SetTrending replaces the trending list
	SetPlaylists(playlists []models.Playlist)         // SetPlaylists replaces the playlist list
	SetSearchResults(results []models.TrackRef)       // SetSearchResults replaces search results; empty means nothing found
	SetNowPlaying(track models.Track)                 // SetNowPlaying fills cover, title, and artist
	SetPlaying(playing bool)                          // SetPlaying switches the play/pause glyph
	SetProgress(ratio float64, elapsed, total string) // SetProgress fills the progress bar and time labels
	SetVolume(volume float64)                         // SetVolume shows the volume level
	SetCode(code [models.CodeLength]string)           // SetCode writes the six two-factor fields
	FocusCode(field int)                              // FocusCode moves focus to a two-factor field
	ShowNotice(n models.Notice)                       // ShowNotice fills the notice slot
	ClearNotice(id string)                            // ClearNotice empties the slot if it still holds notice id
}
