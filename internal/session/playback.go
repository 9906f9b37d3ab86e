package session

import (
	"github.com/desertthunder/tunedeck/internal/models"
	"github.com/desertthunder/tunedeck/internal/shared"
)

// Play selects the track at index, marks it playing, and restarts the one-second playback task.
// Any previous playback task is stopped first, so only one ever runs.
func (c *Controller) Play(index int) {
	if c.page != models.MainPage || index < 0 || index >= len(c.tracks) {
		return
	}

	track := c.tracks[index]
	c.transport.Index = index
	c.transport.Playing = true
	c.transport.Elapsed = 0
	c.transport.Duration = c.durationFor(track)

	c.view.SetNowPlaying(track)
	c.view.SetPlaying(true)
	c.pushProgress()

	if c.playback != nil {
		c.playback.Stop()
	}
	c.playback = c.scheduler.Every(c.timing.Tick, c.tick)

	c.logger.Info("now playing", "index", index, "title", track.Title, "artist", track.Artist)
	c.Notify(models.NoticeSuccess, "Now playing: "+track.Title)
}

// tick advances the elapsed counter while playing and moves on when the track runs out.
// Paused ticks still fire but change nothing.
func (c *Controller) tick() {
	if !c.transport.Playing {
		return
	}

	c.transport.Elapsed++
	c.pushProgress()
	c.logger.Debug("tick", "elapsed", c.transport.Elapsed, "duration", c.transport.Duration)

	if c.transport.Elapsed >= c.transport.Duration {
		c.Next()
	}
}

// TogglePlay flips between playing and paused. It does not touch the tick task.
// With no track selected it does nothing, so playing never holds without a track.
func (c *Controller) TogglePlay() {
	if !c.transport.Selected() {
		return
	}
	c.transport.Playing = !c.transport.Playing
	c.view.SetPlaying(c.transport.Playing)
}

// Previous plays the track before the current one. It does not wrap: at the first track, or with
// nothing selected, it does nothing.
func (c *Controller) Previous() {
	if c.transport.Selected() && c.transport.Index > 0 {
		c.Play(c.transport.Index - 1)
	}
}

// Next plays the track after the current one. Unlike [Controller.Previous] it wraps: from the last
// track, or with nothing selected, it plays the first track.
func (c *Controller) Next() {
	if c.transport.Selected() && c.transport.Index < len(c.tracks)-1 {
		c.Play(c.transport.Index + 1)
		return
	}
	c.Play(0)
}

// SetVolume stores the volume clamped to [0, 1]. Nothing is audible; the level is only displayed.
func (c *Controller) SetVolume(volume float64) {
	c.transport.Volume = clampVolume(volume)
	c.view.SetVolume(c.transport.Volume)
}

func (c *Controller) durationFor(track models.Track) int {
	if c.useTrackDuration && track.Duration > 0 {
		return track.Duration
	}
	return c.duration
}

func (c *Controller) pushProgress() {
	c.view.SetProgress(
		c.transport.Ratio(),
		shared.FormatTime(c.transport.Elapsed),
		shared.FormatTime(c.transport.Duration),
	)
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
