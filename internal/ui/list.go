package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/tunedeck/internal/models"
	"github.com/desertthunder/tunedeck/internal/shared"
)

var (
	_ list.Item = playlistItem{}
	_ list.Item = trackItem{}
)

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return fmt.Sprintf("%s %s", i.playlist.Cover, i.playlist.Name) }
func (i playlistItem) Description() string {
	desc := fmt.Sprintf("%d songs", i.playlist.Count)
	if i.playlist.Creator != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.Creator)
	}
	return desc
}

// trackItem wraps [models.TrackRef] to implement [list.Item]. The index always points into the
// full catalog, so playing a filtered row plays the right track.
type trackItem struct {
	ref models.TrackRef
}

func (i trackItem) FilterValue() string { return i.ref.Track.Title }
func (i trackItem) Title() string {
	return fmt.Sprintf("%s %s", i.ref.Track.Cover, i.ref.Track.Title)
}
func (i trackItem) Description() string {
	desc := i.ref.Track.Artist
	if i.ref.Track.Album != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.ref.Track.Album)
	}
	if i.ref.Track.Duration > 0 {
		desc = fmt.Sprintf("%s • %s", desc, shared.FormatTime(i.ref.Track.Duration))
	}
	return desc
}

func newList(title string, items []list.Item, width, height int) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func trackItems(refs []models.TrackRef) []list.Item {
	items := make([]list.Item, len(refs))
	for i, ref := range refs {
		items[i] = trackItem{ref: ref}
	}
	return items
}

func playlistItems(playlists []models.Playlist) []list.Item {
	items := make([]list.Item, len(playlists))
	for i, pl := range playlists {
		items[i] = playlistItem{playlist: pl}
	}
	return items
}
