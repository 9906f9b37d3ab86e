package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/desertthunder/tunedeck/internal/models"
)

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	next      key.Binding
	back      key.Binding
	search    key.Binding
	tabs      key.Binding
	trending  key.Binding
	playlists key.Binding
	results   key.Binding
	toggle    key.Binding
	prevTrack key.Binding
	nextTrack key.Binding
	volUp     key.Binding
	volDown   key.Binding
	quit      key.Binding
	forceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		next:      key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		tabs:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab/1-3", "section")),
		trending:  key.NewBinding(key.WithKeys("1")),
		playlists: key.NewBinding(key.WithKeys("2")),
		results:   key.NewBinding(key.WithKeys("3")),
		toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		prevTrack: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "prev")),
		nextTrack: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "next")),
		volUp:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "volume")),
		volDown:   key.NewBinding(key.WithKeys("-")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		forceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// forPage returns the bindings worth showing on a page.
func (k keyMap) forPage(page models.Page, searching bool) []key.Binding {
	switch page {
	case models.LoginPage:
		return []key.Binding{k.next, k.enter, k.forceQuit}
	case models.TwoFactorPage:
		return []key.Binding{k.enter, k.back, k.forceQuit}
	default:
		if searching {
			return []key.Binding{k.back, k.forceQuit}
		}
		return []key.Binding{k.tabs, k.search, k.enter, k.toggle, k.prevTrack, k.nextTrack, k.volUp, k.quit}
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.tabs, k.search, k.toggle},
		{k.prevTrack, k.nextTrack, k.volUp, k.quit},
	}
}
