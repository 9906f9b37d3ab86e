package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/tunedeck/internal/clock"
	"github.com/desertthunder/tunedeck/internal/session"
	"github.com/desertthunder/tunedeck/internal/shared"
	"github.com/desertthunder/tunedeck/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive music client.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	verifier, err := session.NewVerifier(r.config.TwoFactor.Mode, r.config.TwoFactor.Code, r.config.TwoFactor.TOTPSecret)
	if err != nil {
		return err
	}

	logPath := cmd.String("log-file")
	if logPath == "" {
		logPath = r.config.Log.Path
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, r.config.Log.Level)
	r.SetLogger(fileLogger)

	model := ui.NewModel()
	var p *tea.Program
	scheduler := clock.NewReal(func(fn func()) { p.Send(ui.Dispatch(fn)) })

	ctrl := session.New(r.sessionOptions(model, scheduler, verifier))
	model.Attach(ctrl)

	p = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	r.logger.Info("starting tui", "two_factor", r.config.TwoFactor.Mode)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// sessionOptions maps config onto controller options.
func (r *Runner) sessionOptions(view session.View, scheduler clock.Scheduler, verifier session.Verifier) session.Options {
	c := r.config
	volume := c.Playback.Volume
	return session.Options{
		View:      view,
		Scheduler: scheduler,
		Logger:    shared.WithLogger(r.logger, "component", "session"),
		Verifier:  verifier,
		Timing: session.Timing{
			Login:  shared.Delay(c.Auth.LoginDelayMS, session.DefaultLoginDelay),
			Verify: shared.Delay(c.Auth.VerifyDelayMS, session.DefaultVerifyDelay),
			Settle: shared.Delay(c.Auth.SettleDelayMS, session.DefaultSettleDelay),
			Notice: shared.Delay(c.Notice.TTLMS, session.DefaultNoticeTTL),
		},
		Duration:         c.Playback.Duration,
		UseTrackDuration: c.Playback.UseTrackDuration,
		Volume:           &volume,
		Now:              r.now,
	}
}
