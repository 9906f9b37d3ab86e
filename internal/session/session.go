package session

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tunedeck/internal/catalog"
	"github.com/desertthunder/tunedeck/internal/clock"
	"github.com/desertthunder/tunedeck/internal/models"
	"github.com/desertthunder/tunedeck/internal/shared"
)

const (
	DefaultLoginDelay  = 1500 * time.Millisecond
	DefaultVerifyDelay = 2 * time.Second
	DefaultSettleDelay = time.Second
	DefaultNoticeTTL   = 3 * time.Second
	DefaultTick        = time.Second
	DefaultDuration    = 180
	DefaultVolume      = 0.7
	DefaultCode        = "123456"
)

// Timing holds the delays the controller schedules. Zero fields use the defaults.
type Timing struct {
	Login  time.Duration // simulated latency before a login resolves
	Verify time.Duration // simulated latency before a code check resolves
	Settle time.Duration // pause between a success notice and the page switch
	Notice time.Duration // lifetime of a notice
	Tick   time.Duration // playback tick interval
}

func (t Timing) withDefaults() Timing {
	if t.Login <= 0 {
		t.Login = DefaultLoginDelay
	}
	if t.Verify <= 0 {
		t.Verify = DefaultVerifyDelay
	}
	if t.Settle <= 0 {
		t.Settle = DefaultSettleDelay
	}
	if t.Notice <= 0 {
		t.Notice = DefaultNoticeTTL
	}
	if t.Tick <= 0 {
		t.Tick = DefaultTick
	}
	return t
}

// Options configures a [Controller].
type Options struct {
	View             View
	Scheduler        clock.Scheduler
	Logger           *log.Logger
	Verifier         Verifier
	Credentials      []models.Credential
	Tracks           []models.Track
	Playlists        []models.Playlist
	Timing           Timing
	Duration         int      // fixed playback length in seconds
	UseTrackDuration bool     // run the progress bar against each track's own duration instead
	Volume           *float64 // initial volume, nil uses the default
	Now              func() time.Time
}

// Controller owns all mutable client state: navigation, the pending and signed-in user,
// the two-factor fields, the simulated transport, and the notice slot.
//
// It is not safe for concurrent use. Every method, and every scheduler callback, must run on the
// same event loop.
type Controller struct {
	view      View
	scheduler clock.Scheduler
	logger    *log.Logger
	verifier  Verifier
	timing    Timing
	now       func() time.Time

	credentials []models.Credential
	tracks      []models.Track
	playlists   []models.Playlist

	page    models.Page
	tab     models.Tab
	pending *models.Credential
	session *models.Session
	epoch   int

	loginBusy  bool
	verifyBusy bool
	code       [models.CodeLength]string
	focus      int

	transport        models.Transport
	duration         int
	useTrackDuration bool
	playback         clock.Handle

	notice *models.Notice
}

// Snapshot is a copy of the controller state.
type Snapshot struct {
	Page       models.Page
	Tab        models.Tab
	Session    *models.Session
	Pending    bool
	LoginBusy  bool
	VerifyBusy bool
	Code       [models.CodeLength]string
	CodeFocus  int
	Transport  models.Transport
	Notice     *models.Notice
}

// New creates a [Controller]. View and Scheduler are required.
func New(opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = shared.NopLogger()
	}
	if opts.Verifier == nil {
		opts.Verifier = StaticCode(DefaultCode)
	}
	if opts.Credentials == nil {
		opts.Credentials = catalog.Credentials()
	}
	if opts.Tracks == nil {
		opts.Tracks = catalog.Tracks()
	}
	if opts.Playlists == nil {
		opts.Playlists = catalog.Playlists()
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	volume := DefaultVolume
	if opts.Volume != nil {
		volume = *opts.Volume
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Controller{
		view:             opts.View,
		scheduler:        opts.Scheduler,
		logger:           opts.Logger,
		verifier:         opts.Verifier,
		timing:           opts.Timing.withDefaults(),
		now:              opts.Now,
		credentials:      opts.Credentials,
		tracks:           opts.Tracks,
		playlists:        opts.Playlists,
		page:             models.LoginPage,
		tab:              models.TrendingTab,
		duration:         opts.Duration,
		useTrackDuration: opts.UseTrackDuration,
		transport: models.Transport{
			Index:    models.NoTrack,
			Duration: opts.Duration,
			Volume:   clampVolume(volume),
		},
	}
}

// Start shows the login page and the initial volume.
func (c *Controller) Start() {
	c.showPage(models.LoginPage)
	c.view.SetVolume(c.transport.Volume)
	c.view.SetProgress(0, shared.FormatTime(0), shared.FormatTime(c.transport.Duration))
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Page:       c.page,
		Tab:        c.tab,
		Pending:    c.pending != nil,
		LoginBusy:  c.loginBusy,
		VerifyBusy: c.verifyBusy,
		Code:       c.code,
		CodeFocus:  c.focus,
		Transport:  c.transport,
	}
	if c.session != nil {
		sess := *c.session
		s.Session = &sess
	}
	if c.notice != nil {
		n := *c.notice
		s.Notice = &n
	}
	return s
}

// Tracks returns the catalog the controller plays from.
func (c *Controller) Tracks() []models.Track {
	return append([]models.Track(nil), c.tracks...)
}

func (c *Controller) showPage(page models.Page) {
	c.page = page
	c.view.ShowPage(page)
}

// after schedules fn unless the navigation epoch has moved on by the time it fires.
func (c *Controller) after(d time.Duration, fn func()) {
	epoch := c.epoch
	c.scheduler.After(d, func() {
		if c.epoch != epoch {
			c.logger.Debug("dropping stale callback", "epoch", epoch, "current", c.epoch)
			return
		}
		fn()
	})
}
