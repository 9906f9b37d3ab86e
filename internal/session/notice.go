package session

import (
	"github.com/desertthunder/tunedeck/internal/models"
	"github.com/desertthunder/tunedeck/internal/shared"
)

// Notify replaces whatever notice is showing and schedules the new one to clear itself.
//
// The clear only removes the notice it was scheduled for, so a later notice keeps its full lifetime.
func (c *Controller) Notify(kind models.NoticeKind, text string) models.Notice {
	if c.notice != nil {
		c.view.ClearNotice(c.notice.ID)
	}

	n := models.Notice{ID: shared.GenerateID(), Kind: kind, Text: text}
	c.notice = &n
	c.view.ShowNotice(n)

	c.scheduler.After(c.timing.Notice, func() {
		if c.notice == nil || c.notice.ID != n.ID {
			return
		}
		c.notice = nil
		c.view.ClearNotice(n.ID)
	})

	return n
}
