package ui

import (
	"github.com/desertthunder/tunedeck/internal/models"
)

// ShowPage implements [session.View].
func (m *Model) ShowPage(page models.Page) {
	m.page = page
	switch page {
	case models.LoginPage:
		m.focusLogin(0)
	case models.TwoFactorPage:
		m.appleID.Blur()
		m.password.Blur()
		m.FocusCode(0)
	case models.MainPage:
		for i := range m.code {
			m.code[i].Blur()
		}
		m.password.Reset()
	}
}

// ShowTab implements [session.View].
func (m *Model) ShowTab(tab models.Tab) {
	m.tab = tab
}

// SetBusy implements [session.View].
func (m *Model) SetBusy(form models.Form, busy bool) {
	switch form {
	case models.LoginForm:
		m.loginBusy = busy
	case models.TwoFactorForm:
		m.verifyBusy = busy
	}
}

// SetMaskedID implements [session.View].
func (m *Model) SetMaskedID(masked string) {
	m.maskedID = masked
}

// SetUser implements [session.View].
func (m *Model) SetUser(user models.Credential) {
	m.user = &user
}

// SetTrending implements [session.View].
func (m *Model) SetTrending(tracks []models.TrackRef) {
	m.trendingList.SetItems(trackItems(tracks))
	m.trendingList.ResetSelected()
}

// SetPlaylists implements [session.View].
func (m *Model) SetPlaylists(playlists []models.Playlist) {
	m.playlistList.SetItems(playlistItems(playlists))
}

// SetSearchResults implements [session.View].
func (m *Model) SetSearchResults(results []models.TrackRef) {
	m.searchResults = len(results)
	m.searchList.SetItems(trackItems(results))
	m.searchList.ResetSelected()
}

// SetNowPlaying implements [session.View].
func (m *Model) SetNowPlaying(track models.Track) {
	m.nowPlaying = &track
}

// SetPlaying implements [session.View].
func (m *Model) SetPlaying(playing bool) {
	m.playing = playing
}

// SetProgress implements [session.View].
func (m *Model) SetProgress(ratio float64, elapsed, total string) {
	m.ratio = ratio
	m.elapsed = elapsed
	m.total = total
}

// SetVolume implements [session.View].
func (m *Model) SetVolume(volume float64) {
	m.volume = volume
}

// SetCode implements [session.View].
func (m *Model) SetCode(code [models.CodeLength]string) {
	for i, v := range code {
		m.code[i].SetValue(v)
	}
}

// FocusCode implements [session.View].
func (m *Model) FocusCode(field int) {
	m.codeFocus = field
	for i := range m.code {
		if i == field {
			m.code[i].Focus()
		} else {
			m.code[i].Blur()
		}
	}
}

// ShowNotice implements [session.View].
func (m *Model) ShowNotice(n models.Notice) {
	m.notice = &n
}

// ClearNotice implements [session.View].
func (m *Model) ClearNotice(id string) {
	if m.notice != nil && m.notice.ID == id {
		m.notice = nil
	}
}
