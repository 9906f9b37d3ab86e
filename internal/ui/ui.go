package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/tunedeck/internal/models"
	"github.com/desertthunder/tunedeck/internal/session"
)

const (
	defaultWidth  = 72
	defaultHeight = 24
	volumeStep    = 0.1
)

// Controller is the part of [session.Controller] the TUI drives.
type Controller interface {
	Start()
	Login(id, password string)
	CodeInput(field int, value string)
	CodeBackspace(field int)
	VerifyCode()
	BackToLogin()
	SwitchTab(tab models.Tab)
	Search(query string)
	Play(index int)
	TogglePlay()
	Previous()
	Next()
	SetVolume(volume float64)
	Snapshot() session.Snapshot
}

var (
	_ Controller   = (*session.Controller)(nil)
	_ session.View = (*Model)(nil)
	_ tea.Model    = (*Model)(nil)
)

// Model represents the TUI application state.
type Model struct {
	ctrl    Controller
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	width   int
	height  int

	page models.Page
	tab  models.Tab

	appleID    textinput.Model
	password   textinput.Model
	loginFocus int
	loginBusy  bool

	code       [models.CodeLength]textinput.Model
	codeFocus  int
	maskedID   string
	verifyBusy bool

	user          *models.Credential
	trendingList  list.Model
	playlistList  list.Model
	searchList    list.Model
	searchInput   textinput.Model
	searching     bool
	searchResults int

	nowPlaying *models.Track
	playing    bool
	bar        progress.Model
	ratio      float64
	elapsed    string
	total      string
	volume     float64

	notice *models.Notice
}

// NewModel creates the TUI model. Call [Model.Attach] before running it.
func NewModel() *Model {
	appleID := textinput.New()
	appleID.Placeholder = "Email or phone number"
	appleID.Prompt = ""
	appleID.CharLimit = 64
	appleID.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 64

	var code [models.CodeLength]textinput.Model
	for i := range code {
		code[i] = textinput.New()
		code[i].Prompt = ""
		code[i].CharLimit = 1
		code[i].Width = 1
	}

	search := textinput.New()
	search.Placeholder = "Songs, artists, albums"
	search.Prompt = "🔍 "
	search.CharLimit = 64

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return &Model{
		keys:         newKeyMap(),
		help:         help.New(),
		spinner:      sp,
		width:        defaultWidth,
		height:       defaultHeight,
		page:         models.LoginPage,
		tab:          models.TrendingTab,
		appleID:      appleID,
		password:     password,
		code:         code,
		searchInput:  search,
		trendingList: newList("Trending", nil, defaultWidth-4, listHeight(defaultHeight)),
		playlistList: newList("Playlists", nil, defaultWidth-4, listHeight(defaultHeight)),
		searchList:   newList("Search", nil, defaultWidth-4, listHeight(defaultHeight)),
		bar:          progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(defaultWidth-24)),
		elapsed:      "0:00",
		total:        "0:00",
	}
}

// Attach connects the controller the model drives. The controller's View must be this model.
func (m *Model) Attach(ctrl Controller) {
	m.ctrl = ctrl
}

// Init shows the login page and starts the cursor and spinner.
func (m *Model) Init() tea.Cmd {
	if m.ctrl != nil {
		m.ctrl.Start()
	}
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case Msg:
		switch msg.kind {
		case MsgDispatch:
			if fn, ok := msg.data.(func()); ok && fn != nil {
				fn()
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.forceQuit) {
			return m, tea.Quit
		}
		switch m.page {
		case models.LoginPage:
			return m.handleLoginKeys(msg)
		case models.TwoFactorPage:
			return m.handleCodeKeys(msg)
		case models.MainPage:
			return m.handleMainKeys(msg)
		}
	}

	return m, nil
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loginBusy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.next), msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		m.focusLogin(1 - m.loginFocus)
		return m, nil
	case key.Matches(msg, m.keys.enter):
		m.ctrl.Login(m.appleID.Value(), m.password.Value())
		return m, nil
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.appleID, cmd = m.appleID.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleCodeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.ctrl.BackToLogin()
		return m, nil
	case m.verifyBusy:
		return m, nil
	case key.Matches(msg, m.keys.enter):
		m.ctrl.VerifyCode()
	case msg.Type == tea.KeyBackspace, msg.Type == tea.KeyDelete:
		m.ctrl.CodeBackspace(m.codeFocus)
	case msg.Type == tea.KeyLeft:
		m.FocusCode(max(m.codeFocus-1, 0))
	case msg.Type == tea.KeyRight:
		m.FocusCode(min(m.codeFocus+1, models.CodeLength-1))
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0:
		m.ctrl.CodeInput(m.codeFocus, string(msg.Runes))
	}
	return m, nil
}

func (m *Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.tabs):
		m.ctrl.SwitchTab(nextTab(m.tab))
	case key.Matches(msg, m.keys.trending):
		m.ctrl.SwitchTab(models.TrendingTab)
	case key.Matches(msg, m.keys.playlists):
		m.ctrl.SwitchTab(models.PlaylistsTab)
	case key.Matches(msg, m.keys.results):
		m.ctrl.SwitchTab(models.SearchTab)
	case key.Matches(msg, m.keys.search):
		m.searching = true
		m.ctrl.SwitchTab(models.SearchTab)
		return m, m.searchInput.Focus()
	case key.Matches(msg, m.keys.enter):
		if ref, ok := m.selectedTrack(); ok {
			m.ctrl.Play(ref.Index)
		}
	case key.Matches(msg, m.keys.toggle):
		m.ctrl.TogglePlay()
	case key.Matches(msg, m.keys.prevTrack):
		m.ctrl.Previous()
	case key.Matches(msg, m.keys.nextTrack):
		m.ctrl.Next()
	case key.Matches(msg, m.keys.volUp):
		m.ctrl.SetVolume(m.volume + volumeStep)
	case key.Matches(msg, m.keys.volDown):
		m.ctrl.SetVolume(m.volume - volumeStep)
	default:
		return m.updateList(msg)
	}
	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.enter):
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	after := m.searchInput.Value()
	if after == before {
		return m, cmd
	}
	if strings.TrimSpace(after) == "" {
		// blank restores trending; the search input is no longer shown
		m.searching = false
		m.searchInput.Blur()
		m.SetSearchResults(nil)
	}
	m.ctrl.Search(after)
	return m, cmd
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tab {
	case models.TrendingTab:
		m.trendingList, cmd = m.trendingList.Update(msg)
	case models.PlaylistsTab:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case models.SearchTab:
		m.searchList, cmd = m.searchList.Update(msg)
	}
	return m, cmd
}

// selectedTrack returns the highlighted track on the visible list, if it is a track list.
func (m *Model) selectedTrack() (models.TrackRef, bool) {
	var item list.Item
	switch m.tab {
	case models.TrendingTab:
		item = m.trendingList.SelectedItem()
	case models.SearchTab:
		item = m.searchList.SelectedItem()
	}
	if ti, ok := item.(trackItem); ok {
		return ti.ref, true
	}
	return models.TrackRef{}, false
}

func (m *Model) focusLogin(field int) {
	m.loginFocus = field
	if field == 0 {
		m.password.Blur()
		m.appleID.Focus()
	} else {
		m.appleID.Blur()
		m.password.Focus()
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.bar.Width = max(width-24, 10)
	for _, l := range []*list.Model{&m.trendingList, &m.playlistList, &m.searchList} {
		l.SetSize(width-4, listHeight(height))
	}
}

func listHeight(height int) int {
	return max(height-14, 4)
}

func nextTab(tab models.Tab) models.Tab {
	for i, t := range models.Tabs {
		if t == tab {
			return models.Tabs[(i+1)%len(models.Tabs)]
		}
	}
	return models.TrendingTab
}
