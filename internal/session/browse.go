package session

import (
	"strings"

	"github.com/desertthunder/tunedeck/internal/catalog"
	"github.com/desertthunder/tunedeck/internal/models"
	"github.com/desertthunder/tunedeck/internal/shared"
)

// startSession promotes the pending credential to a signed-in session and opens the main page.
func (c *Controller) startSession() {
	if c.pending == nil {
		return
	}

	c.session = &models.Session{
		ID:        shared.GenerateID(),
		User:      *c.pending,
		StartedAt: c.now(),
	}
	c.pending = nil
	c.logger.Info("session started", "session", c.session.ID, "user", c.session.User.Name)

	c.showPage(models.MainPage)
	c.view.SetUser(c.session.User)
	c.view.SetTrending(catalog.Refs(c.tracks))
	c.view.SetPlaylists(append([]models.Playlist(nil), c.playlists...))
	c.SwitchTab(models.TrendingTab)
}

// SwitchTab shows one main-page section. Nothing is reloaded.
func (c *Controller) SwitchTab(tab models.Tab) {
	if c.page != models.MainPage {
		return
	}
	c.tab = tab
	c.view.ShowTab(tab)
}

// SwitchTabByName switches to the tab with the given name; unknown names are ignored.
func (c *Controller) SwitchTabByName(name string) {
	tab, err := models.ParseTab(name)
	if err != nil {
		c.logger.Debug("ignoring tab switch", "error", err)
		return
	}
	c.SwitchTab(tab)
}

// Search filters the catalog by title, artist, and album, ignoring case, and shows the search tab.
//
// A blank query is "no filter": the full trending list is restored and shown instead.
// No matches is not an error; the view renders its empty placeholder.
func (c *Controller) Search(query string) {
	if c.page != models.MainPage {
		return
	}

	if strings.TrimSpace(query) == "" {
		c.view.SetTrending(catalog.Refs(c.tracks))
		c.SwitchTab(models.TrendingTab)
		return
	}

	results := catalog.Search(c.tracks, query)
	c.logger.Debug("search", "query", query, "results", len(results))
	c.view.SetSearchResults(results)
	c.SwitchTab(models.SearchTab)
}
