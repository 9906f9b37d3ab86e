// package formatter renders catalog listings in export formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/tunedeck/internal/models"
	"github.com/desertthunder/tunedeck/internal/shared"
)

// Format names an export format.
type Format string

const (
	CSV      Format = "csv"
	Markdown Format = "md"
	Text     Format = "text"
)

// ParseFormat resolves a format name. "markdown" and "txt" are accepted aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return Text, nil
	case "csv":
		return CSV, nil
	case "md", "markdown":
		return Markdown, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, name)
	}
}

// Export renders tracks in the given format.
func Export(format Format, title string, tracks []models.TrackRef) ([]byte, error) {
	switch format {
	case CSV:
		return ExportToCSV(tracks)
	case Markdown:
		return ExportToMarkdown(title, tracks), nil
	default:
		return ExportToText(title, tracks), nil
	}
}

// ExportToCSV writes tracks with columns: Index, Title, Artist, Album, Duration
func ExportToCSV(tracks []models.TrackRef) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Index", "Title", "Artist", "Album", "Duration"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, ref := range tracks {
		record := []string{
			strconv.Itoa(ref.Index),
			ref.Track.Title,
			ref.Track.Artist,
			ref.Track.Album,
			strconv.Itoa(ref.Track.Duration),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders tracks as a numbered Markdown list under a heading
func ExportToMarkdown(title string, tracks []models.TrackRef) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", title)
	fmt.Fprintf(&buf, "**Tracks**: %d\n\n", len(tracks))

	for _, ref := range tracks {
		albumPart := ""
		if ref.Track.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", ref.Track.Album)
		}
		fmt.Fprintf(&buf, "%d. %s - %s%s [%s]\n", ref.Index+1, ref.Track.Artist, ref.Track.Title, albumPart, shared.FormatTime(ref.Track.Duration))
	}

	return buf.Bytes()
}

// ExportToText renders tracks one per line, numbered by catalog position
func ExportToText(title string, tracks []models.TrackRef) []byte {
	var buf bytes.Buffer

	if title != "" {
		fmt.Fprintf(&buf, "%s\n\n", title)
	}
	for _, ref := range tracks {
		t := ref.Track
		fmt.Fprintf(&buf, "%d. %s %s - %s [%s] %s\n", ref.Index+1, t.Cover, t.Title, t.Artist, t.Album, shared.FormatTime(t.Duration))
	}

	return buf.Bytes()
}
