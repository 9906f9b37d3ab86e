package session

import (
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/tunedeck/internal/models"
)

func TestSearch(t *testing.T) {
	t.Run("matches regardless of case", func(t *testing.T) {
		for _, q := range []string{"weeknd", "WEEKND", "WeEkNd"} {
			t.Run(q, func(t *testing.T) {
				c, view, s := newTestController(t)
				signIn(t, c, s)
				c.Search(q)

				if len(view.SearchResults) != 1 || view.SearchResults[0].Index != 0 {
					t.Fatalf("expected only Blinding Lights, got %+v", view.SearchResults)
				}
				if view.Tab != models.SearchTab || c.Snapshot().Tab != models.SearchTab {
					t.Errorf("expected search tab, got %v", view.Tab)
				}
			})
		}
	})

	t.Run("results keep catalog indices", func(t *testing.T) {
		c, view, s := newTestController(t)
		signIn(t, c, s)
		c.Search("imagine")

		if len(view.SearchResults) != 1 || view.SearchResults[0].Index != 5 {
			t.Fatalf("expected Imagine at catalog index 5, got %+v", view.SearchResults)
		}

		c.Play(view.SearchResults[0].Index)
		if view.NowPlaying == nil || view.NowPlaying.Title != "Imagine" {
			t.Errorf("expected Imagine playing, got %+v", view.NowPlaying)
		}
	})

	t.Run("every result contains the query", func(t *testing.T) {
		c, view, s := newTestController(t)
		signIn(t, c, s)
		c.Search("o")

		if len(view.SearchResults) == 0 {
			t.Fatal("expected matches for \"o\"")
		}
		for _, ref := range view.SearchResults {
			tr := ref.Track
			hay := strings.ToLower(tr.Title + "\n" + tr.Artist + "\n" + tr.Album)
			if !strings.Contains(hay, "o") {
				t.Errorf("%q does not match", tr.Title)
			}
		}
	})

	t.Run("blank query restores trending", func(t *testing.T) {
		for _, q := range []string{"", "   "} {
			c, view, s := newTestController(t)
			signIn(t, c, s)
			c.Search("queen")
			calls := view.SearchCalls

			view.Trending = nil
			c.Search(q)
			if len(view.Trending) != 6 {
				t.Errorf("expected full trending list for %q, got %d", q, len(view.Trending))
			}
			if view.Tab != models.TrendingTab {
				t.Errorf("expected trending tab for %q, got %v", q, view.Tab)
			}
			if view.SearchCalls != calls {
				t.Errorf("blank query should not render results")
			}
		}
	})

	t.Run("no matches is not an error", func(t *testing.T) {
		c, view, s := newTestController(t)
		signIn(t, c, s)
		before := len(view.Notices)
		c.Search("zzz-no-such-track")

		if view.SearchResults == nil || len(view.SearchResults) != 0 {
			t.Errorf("expected empty results, got %+v", view.SearchResults)
		}
		if view.Tab != models.SearchTab {
			t.Errorf("expected search tab, got %v", view.Tab)
		}
		if len(view.Notices) != before {
			t.Error("empty results should not raise a notice")
		}
	})

	t.Run("ignored before sign-in", func(t *testing.T) {
		c, view, _ := newTestController(t)
		c.Search("weeknd")
		if view.SearchCalls != 0 {
			t.Error("search should be ignored on the login page")
		}
	})
}

func TestSwitchTab(t *testing.T) {
	c, view, s := newTestController(t)
	signIn(t, c, s)

	c.SwitchTabByName("Playlists")
	if view.Tab != models.PlaylistsTab {
		t.Errorf("expected playlists tab, got %v", view.Tab)
	}

	c.SwitchTabByName("albums")
	if view.Tab != models.PlaylistsTab {
		t.Errorf("unknown tab should be ignored, got %v", view.Tab)
	}

	c.SwitchTab(models.TrendingTab)
	if c.Snapshot().Tab != models.TrendingTab {
		t.Errorf("expected trending tab, got %v", c.Snapshot().Tab)
	}
}

func TestPlay(t *testing.T) {
	t.Run("starts the transport", func(t *testing.T) {
		c, view, s := newTestController(t)
		signIn(t, c, s)
		c.Play(0)

		snap := c.Snapshot()
		if snap.Transport.Index != 0 || !snap.Transport.Playing || snap.Transport.Elapsed != 0 {
			t.Errorf("unexpected transport %+v", snap.Transport)
		}
		if view.NowPlaying == nil || view.NowPlaying.Title != "Blinding Lights" || !view.Playing {
			t.Errorf("expected Blinding Lights playing, got %+v", view.NowPlaying)
		}
		if view.Notice == nil || view.Notice.Text != "Now playing: Blinding Lights" {
			t.Errorf("expected now playing notice, got %+v", view.Notice)
		}

		s.Advance(3 * time.Second)
		if view.Elapsed != "0:03" || view.Total != "3:00" {
			t.Errorf("expected 0:03 / 3:00, got %s / %s", view.Elapsed, view.Total)
		}
		if c.Snapshot().Transport.Elapsed != 3 {
			t.Errorf("expected 3 ticks, got %d", c.Snapshot().Transport.Elapsed)
		}
	})

	t.Run("restarting keeps one timer", func(t *testing.T) {
		c, _, s := newTestController(t)
		signIn(t, c, s)

		c.Play(0)
		s.Advance(5 * time.Second)
		c.Play(3)
		s.Advance(2 * time.Second)

		if s.Repeating() != 1 {
			t.Fatalf("expected exactly one playback timer, got %d", s.Repeating())
		}
		tr := c.Snapshot().Transport
		if tr.Index != 3 || tr.Elapsed != 2 {
			t.Errorf("expected track 3 at 2s, got index %d elapsed %d", tr.Index, tr.Elapsed)
		}
	})

	t.Run("out of range is ignored", func(t *testing.T) {
		c, view, s := newTestController(t)
		signIn(t, c, s)
		c.Play(6)
		c.Play(-1)
		if view.NowPlaying != nil || s.Repeating() != 0 {
			t.Error("invalid index should not start playback")
		}
	})

	t.Run("auto-advances at the end", func(t *testing.T) {
		c, _, s := newTestController(t)
		signIn(t, c, s)
		c.Play(0)

		s.Advance(time.Duration(DefaultDuration-1) * time.Second)
		if c.Snapshot().Transport.Index != 0 {
			t.Fatal("advanced too early")
		}

		s.Advance(time.Second)
		tr := c.Snapshot().Transport
		if tr.Index != 1 || tr.Elapsed != 0 || !tr.Playing {
			t.Errorf("expected track 1 from the start, got %+v", tr)
		}
		if s.Repeating() != 1 {
			t.Errorf("expected one playback timer, got %d", s.Repeating())
		}
	})

	t.Run("auto-advance wraps from the last track", func(t *testing.T) {
		c, _, s := newTestController(t)
		signIn(t, c, s)
		c.Play(5)
		s.Advance(time.Duration(DefaultDuration) * time.Second)
		if got := c.Snapshot().Transport.Index; got != 0 {
			t.Errorf("expected wrap to 0, got %d", got)
		}
	})

	t.Run("track durations", func(t *testing.T) {
		c, view, s := newTestController(t, func(o *Options) { o.UseTrackDuration = true })
		signIn(t, c, s)
		c.Play(0)

		if c.Snapshot().Transport.Duration != 200 || view.Total != "3:20" {
			t.Errorf("expected 200s track, got %d (%s)", c.Snapshot().Transport.Duration, view.Total)
		}
	})
}

func TestTogglePlay(t *testing.T) {
	t.Run("pauses without stopping the timer", func(t *testing.T) {
		c, view, s := newTestController(t)
		signIn(t, c, s)
		c.Play(2)
		s.Advance(4 * time.Second)

		c.TogglePlay()
		if view.Playing || c.Snapshot().Transport.Playing {
			t.Error("expected paused")
		}
		s.Advance(10 * time.Second)
		if got := c.Snapshot().Transport.Elapsed; got != 4 {
			t.Errorf("elapsed moved while paused: %d", got)
		}
		if s.Repeating() != 1 {
			t.Errorf("pause should keep the timer, got %d", s.Repeating())
		}

		c.TogglePlay()
		s.Advance(2 * time.Second)
		if got := c.Snapshot().Transport.Elapsed; got != 6 {
			t.Errorf("expected resume from 4 to 6, got %d", got)
		}
	})

	t.Run("nothing selected", func(t *testing.T) {
		c, view, s := newTestController(t)
		signIn(t, c, s)
		c.TogglePlay()
		if view.Playing || c.Snapshot().Transport.Playing {
			t.Error("toggle without a track should do nothing")
		}
	})
}

func TestPreviousNext(t *testing.T) {
	tc := []struct {
		name  string
		start int
		step  func(*Controller)
		want  int
	}{
		{name: "previous at first stays", start: 0, step: (*Controller).Previous, want: 0},
		{name: "previous moves back", start: 3, step: (*Controller).Previous, want: 2},
		{name: "next moves forward", start: 2, step: (*Controller).Next, want: 3},
		{name: "next at last wraps", start: 5, step: (*Controller).Next, want: 0},
		{name: "next with nothing selected", start: models.NoTrack, step: (*Controller).Next, want: 0},
		{name: "previous with nothing selected", start: models.NoTrack, step: (*Controller).Previous, want: models.NoTrack},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			c, _, s := newTestController(t)
			signIn(t, c, s)
			if tt.start != models.NoTrack {
				c.Play(tt.start)
				s.Advance(7 * time.Second)
			}

			tt.step(c)
			tr := c.Snapshot().Transport
			if tr.Index != tt.want {
				t.Errorf("expected index %d, got %d", tt.want, tr.Index)
			}
			if tt.start == 0 && tt.want == 0 && tr.Elapsed != 7 {
				t.Errorf("previous at the first track should not restart, elapsed %d", tr.Elapsed)
			}
		})
	}
}

func TestSetVolume(t *testing.T) {
	tc := []struct {
		in   float64
		want float64
	}{
		{in: 0.25, want: 0.25},
		{in: -1, want: 0},
		{in: 1.5, want: 1},
	}

	c, view, _ := newTestController(t)
	for _, tt := range tc {
		c.SetVolume(tt.in)
		if view.Volume != tt.want || c.Snapshot().Transport.Volume != tt.want {
			t.Errorf("SetVolume(%v): got %v", tt.in, view.Volume)
		}
	}
}

func TestNotify(t *testing.T) {
	t.Run("clears after the ttl", func(t *testing.T) {
		c, view, s := newTestController(t)
		n := c.Notify(models.NoticeSuccess, "saved")

		if view.Notice == nil || view.Notice.ID != n.ID {
			t.Fatalf("expected notice shown, got %+v", view.Notice)
		}
		s.Advance(DefaultNoticeTTL - time.Millisecond)
		if view.Notice == nil {
			t.Fatal("notice cleared early")
		}
		s.Advance(time.Millisecond)
		if view.Notice != nil || c.Snapshot().Notice != nil {
			t.Error("expected notice cleared")
		}
	})

	t.Run("second notice replaces the first", func(t *testing.T) {
		c, view, s := newTestController(t)
		c.Notify(models.NoticeSuccess, "first")
		s.Advance(time.Second)
		second := c.Notify(models.NoticeError, "second")

		if view.Notice == nil || view.Notice.Text != "second" {
			t.Fatalf("expected only the second notice, got %+v", view.Notice)
		}

		s.Advance(2 * time.Second)
		if view.Notice == nil || view.Notice.ID != second.ID {
			t.Fatal("first notice's timer cleared the second")
		}

		s.Advance(time.Second)
		if view.Notice != nil {
			t.Errorf("expected second notice cleared after its ttl, got %+v", view.Notice)
		}
	})
}
