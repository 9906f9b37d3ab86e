package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/tunedeck/internal/models"
)

const noResults = "No matching songs"

// View renders the UI based on the current page.
func (m *Model) View() string {
	var body string
	switch m.page {
	case models.LoginPage:
		body = m.renderLogin()
	case models.TwoFactorPage:
		body = m.renderTwoFactor()
	case models.MainPage:
		body = m.renderMain()
	}

	helpView := m.help.ShortHelpView(m.keys.forPage(m.page, m.searching))
	return fmt.Sprintf("%s\n%s\n\n%s", body, m.renderNotice(), helpView)
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Sign in with Apple ID")

	idBox, pwBox := styles.box, styles.box
	if m.loginFocus == 0 {
		idBox = styles.focused
	} else {
		pwBox = styles.focused
	}

	button := styles.ok.Render("[ Sign In ]")
	if m.loginBusy {
		button = fmt.Sprintf("%s %s", m.spinner.View(), styles.muted.Render("Signing in…"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		idBox.Width(40).Render(m.appleID.View()),
		pwBox.Width(40).Render(m.password.View()),
		"",
		button,
	)
}

func (m *Model) renderTwoFactor() string {
	title := styles.title.Render("Two-Factor Authentication")
	sent := styles.muted.Render(fmt.Sprintf("A verification code was sent to %s", m.maskedID))

	boxes := make([]string, len(m.code))
	for i := range m.code {
		box := styles.box
		if i == m.codeFocus {
			box = styles.focused
		}
		boxes[i] = box.Render(m.code[i].View())
	}

	button := styles.ok.Render("[ Verify ]")
	if m.verifyBusy {
		button = fmt.Sprintf("%s %s", m.spinner.View(), styles.muted.Render("Verifying…"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		sent,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, boxes...),
		"",
		button,
	)
}

func (m *Model) renderMain() string {
	var header string
	if m.user != nil {
		header = styles.title.Render(fmt.Sprintf("%s %s", m.user.Avatar, m.user.Name)) +
			styles.muted.Render("  "+m.user.Membership)
	}

	var section string
	switch m.tab {
	case models.TrendingTab:
		section = m.trendingList.View()
	case models.PlaylistsTab:
		section = m.playlistList.View()
	case models.SearchTab:
		section = m.renderSearch()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderTabs(),
		"",
		section,
		m.renderPlayer(),
	)
}

func (m *Model) renderTabs() string {
	labels := map[models.Tab]string{
		models.TrendingTab:  "1 Trending",
		models.PlaylistsTab: "2 Playlists",
		models.SearchTab:    "3 Search",
	}

	tabs := make([]string, 0, len(models.Tabs))
	for _, t := range models.Tabs {
		if t == m.tab {
			tabs = append(tabs, styles.activeTab.Render(labels[t]))
		} else {
			tabs = append(tabs, styles.tab.Render(labels[t]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderSearch() string {
	input := styles.box.Render(m.searchInput.View())
	if m.searching {
		input = styles.focused.Render(m.searchInput.View())
	}

	if strings.TrimSpace(m.searchInput.Value()) == "" && m.searchResults == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, input, "", styles.help.Render("Type / to search the catalog"))
	}
	if m.searchResults == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, input, "", styles.muted.Render(noResults))
	}
	return lipgloss.JoinVertical(lipgloss.Left, input, m.searchList.View())
}

func (m *Model) renderPlayer() string {
	glyph := "▶"
	if m.playing {
		glyph = "⏸"
	}

	title := styles.muted.Render("Nothing playing")
	if m.nowPlaying != nil {
		title = fmt.Sprintf("%s %s · %s", m.nowPlaying.Cover, m.nowPlaying.Title, styles.muted.Render(m.nowPlaying.Artist))
	}

	bar := fmt.Sprintf("%s %s %s / %s", glyph, m.bar.ViewAs(m.ratio), m.elapsed, m.total)
	return styles.box.Width(max(m.width-4, 20)).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, bar, renderVolume(m.volume)),
	)
}

func renderVolume(v float64) string {
	const slots = 10
	filled := int(v*slots + 0.5)
	return fmt.Sprintf("🔊 %s%s %d%%", strings.Repeat("█", filled), strings.Repeat("░", slots-filled), int(v*100+0.5))
}

func (m *Model) renderNotice() string {
	if m.notice == nil {
		return ""
	}
	prefix := "✓ "
	if m.notice.Kind == models.NoticeError {
		prefix = "✗ "
	}
	return styles.notice(m.notice.Kind).Render(prefix + m.notice.Text)
}
