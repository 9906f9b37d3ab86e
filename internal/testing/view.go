package testing

import (
	"github.com/desertthunder/tunedeck/internal/models"
)

// RecordingView is a test double for session.View that keeps the last value written to each region.
type RecordingView struct {
	Page          models.Page
	Pages         []models.Page
	Tab           models.Tab
	Busy          map[models.Form]bool
	MaskedID      string
	User          *models.Credential
	Trending      []models.TrackRef
	Playlists     []models.Playlist
	SearchResults []models.TrackRef
	SearchCalls   int
	NowPlaying    *models.Track
	Playing       bool
	Ratio         float64
	Elapsed       string
	Total         string
	Volume        float64
	Code          [models.CodeLength]string
	Focus         int
	Notice        *models.Notice
	Notices       []models.Notice // every notice shown, oldest first
}

// NewRecordingView creates an empty [RecordingView].
func NewRecordingView() *RecordingView {
	return &RecordingView{Busy: map[models.Form]bool{}}
}

func (v *RecordingView) ShowPage(page models.Page) {
	v.Page = page
	v.Pages = append(v.Pages, page)
}

func (v *RecordingView) ShowTab(tab models.Tab)                   { v.Tab = tab }
func (v *RecordingView) SetBusy(form models.Form, busy bool)      { v.Busy[form] = busy }
func (v *RecordingView) SetMaskedID(masked string)                { v.MaskedID = masked }
func (v *RecordingView) SetPlaylists(playlists []models.Playlist) { v.Playlists = playlists }
func (v *RecordingView) SetPlaying(playing bool)                  { v.Playing = playing }
func (v *RecordingView) SetVolume(volume float64)                 { v.Volume = volume }
func (v *RecordingView) FocusCode(field int)                      { v.Focus = field }

func (v *RecordingView) SetUser(user models.Credential) {
	v.User = &user
}

func (v *RecordingView) SetTrending(tracks []models.TrackRef) {
	v.Trending = tracks
}

func (v *RecordingView) SetSearchResults(results []models.TrackRef) {
	v.SearchResults = results
	v.SearchCalls++
}

func (v *RecordingView) SetNowPlaying(track models.Track) {
	v.NowPlaying = &track
}

func (v *RecordingView) SetProgress(ratio float64, elapsed, total string) {
	v.Ratio = ratio
	v.Elapsed = elapsed
	v.Total = total
}

func (v *RecordingView) SetCode(code [models.CodeLength]string) {
	v.Code = code
}

func (v *RecordingView) ShowNotice(n models.Notice) {
	v.Notice = &n
	v.Notices = append(v.Notices, n)
}

func (v *RecordingView) ClearNotice(id string) {
	if v.Notice != nil && v.Notice.ID == id {
		v.Notice = nil
	}
}
