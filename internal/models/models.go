// package models defines the data model for the music client mock-up
package models

import (
	"fmt"
	"strings"
	"time"
)

// Credential is an entry in the static account table.
type Credential struct {
	ID         string // Apple ID: an email or phone-like string
	Password   string
	Name       string
	Contact    string // Secondary email or phone shown on the account
	Membership string
	Avatar     string
}

// Session is the authenticated user, present only once both login steps succeed.
type Session struct {
	ID        string
	User      Credential
	StartedAt time.Time
}

// Track represents a catalog song
type Track struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Cover    string `json:"cover"`
	Duration int    `json:"duration"` // Duration in seconds
}

// TrackRef pairs a [Track] with its position in the catalog.
type TrackRef struct {
	Index int   `json:"index"`
	Track Track `json:"track"`
}

// Playlist represents a catalog playlist
type Playlist struct {
	Name    string `json:"name"`
	Cover   string `json:"cover"`
	Count   int    `json:"count"`
	Creator string `json:"creator"`
}

// NoTrack marks a [Transport] with nothing selected.
const NoTrack = -1

// Transport is the simulated playback state.
type Transport struct {
	Index    int     // Catalog index of the current track or [NoTrack]
	Playing  bool    // Only true while a track is selected
	Elapsed  int     // Seconds played of the current track
	Duration int     // Total seconds the progress bar runs against
	Volume   float64 // 0..1
}

// Selected reports whether a track is current.
func (t Transport) Selected() bool {
	return t.Index != NoTrack
}

// Ratio returns elapsed over duration, clamped to [0, 1].
func (t Transport) Ratio() float64 {
	if t.Duration <= 0 {
		return 0
	}
	r := float64(t.Elapsed) / float64(t.Duration)
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}

// Page is a top-level screen.
type Page int

const (
	LoginPage Page = iota
	TwoFactorPage
	MainPage
)

func (p Page) String() string {
	switch p {
	case LoginPage:
		return "login"
	case TwoFactorPage:
		return "twofa"
	case MainPage:
		return "main"
	default:
		return ""
	}
}

// Tab is a content section within the main page.
type Tab int

const (
	TrendingTab Tab = iota
	PlaylistsTab
	SearchTab
)

// Tabs lists tabs in display order.
var Tabs = []Tab{TrendingTab, PlaylistsTab, SearchTab}

func (t Tab) String() string {
	switch t {
	case TrendingTab:
		return "trending"
	case PlaylistsTab:
		return "playlists"
	case SearchTab:
		return "search"
	default:
		return ""
	}
}

// ParseTab resolves a tab by its name.
func ParseTab(name string) (Tab, error) {
	for _, t := range Tabs {
		if strings.EqualFold(strings.TrimSpace(name), t.String()) {
			return t, nil
		}
	}
	return TrendingTab, fmt.Errorf("unknown tab %q", name)
}

// NoticeKind distinguishes success and error notices.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

func (k NoticeKind) String() string {
	if k == NoticeError {
		return "error"
	}
	return "success"
}

// Notice is a transient message shown in the single notice slot.
type Notice struct {
	ID   string
	Kind NoticeKind
	Text string
}

// CodeLength is the number of two-factor code fields.
const CodeLength = 6

// Form identifies a submit control that is disabled while a request is in flight.
type Form int

const (
	LoginForm Form = iota
	TwoFactorForm
)
