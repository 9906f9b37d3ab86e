package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/tunedeck/internal/catalog"
	"github.com/desertthunder/tunedeck/internal/formatter"
	"github.com/desertthunder/tunedeck/internal/session"
	"github.com/desertthunder/tunedeck/internal/shared"
	"github.com/urfave/cli/v3"
)

// CatalogTracks lists the trending tracks, filtered by --query when given.
func (r *Runner) CatalogTracks(ctx context.Context, cmd *cli.Command) error {
	tracks := catalog.Tracks()
	query := cmd.String("query")

	refs := catalog.Refs(tracks)
	if strings.TrimSpace(query) != "" {
		refs = catalog.Search(tracks, query)
		r.logger.Debug("filtered catalog", "query", query, "results", len(refs))
	}

	if cmd.Bool("json") {
		return r.writeJSON(refs, cmd.Bool("pretty"))
	}

	if len(refs) == 0 {
		return r.writePlain("No matching songs\n")
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Trending (%d)", len(refs))
	if format == formatter.Text {
		r.writePlainHeader(title)
		title = ""
	}

	data, err := formatter.Export(format, title, refs)
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}

// CatalogPlaylists lists the featured playlists.
func (r *Runner) CatalogPlaylists(ctx context.Context, cmd *cli.Command) error {
	playlists := catalog.Playlists()

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Playlists (%d)", len(playlists)))
	for _, p := range playlists {
		r.writePlain("%s %s - %d songs, by %s\n", p.Cover, p.Name, p.Count, p.Creator)
	}
	return nil
}

// Mask prints an Apple ID the way the two-factor page shows it.
func (r *Runner) Mask(ctx context.Context, cmd *cli.Command) error {
	id := strings.TrimSpace(cmd.StringArg("id"))
	if id == "" {
		return fmt.Errorf("%w: Apple ID", shared.ErrMissingArgument)
	}
	return r.writePlain("%s\n", session.Mask(id))
}
