package subtitles

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/asticode/go-astisub"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"dronesrt/internal/telemetry"
)

// ErrEmptyTrack reports an input without any subtitle entry.
var ErrEmptyTrack = errors.New("subtitle track has no entries")

// Track is an ordered sequence of subtitle entries read from one SRT file.
type Track struct {
	entries []*Entry
}

// Read decodes an SRT track from r. Input with a UTF-16 or UTF-8 byte order
// mark is transcoded to UTF-8 first; input without one is taken as UTF-8.
func Read(r io.Reader) (*Track, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	subs, err := astisub.ReadFromSRT(decoded)
	if err != nil {
		return nil, fmt.Errorf("parse srt: %w", err)
	}
	if len(subs.Items) == 0 {
		return nil, ErrEmptyTrack
	}
	track := &Track{entries: make([]*Entry, len(subs.Items))}
	for i, item := range subs.Items {
		track.entries[i] = &Entry{item: item, position: i + 1}
	}
	return track, nil
}

// Open reads the SRT track stored at path.
func Open(path string) (*Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open subtitle track: %w", err)
	}
	defer file.Close()

	track, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return track, nil
}

// Len returns the number of entries.
func (t *Track) Len() int {
	return len(t.entries)
}

// Entries returns the entries in track order.
func (t *Track) Entries() []*Entry {
	out := make([]*Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// TextEntries returns the entries as the processor's Entry interface.
func (t *Track) TextEntries() []telemetry.Entry {
	out := make([]telemetry.Entry, len(t.entries))
	for i, entry := range t.entries {
		out[i] = entry
	}
	return out
}

// Write serializes the track as UTF-8 SRT without a byte order mark. Every
// entry keeps the number it was read with; entries without one are numbered
// by position.
func (t *Track) Write(w io.Writer) error {
	for _, entry := range t.entries {
		if _, err := fmt.Fprintf(w, "%d\n%s --> %s\n",
			entry.Index(), FormatTimestamp(entry.Start()), FormatTimestamp(entry.End())); err != nil {
			return fmt.Errorf("write srt: %w", err)
		}
		body := "\n"
		if text := entry.Text(); text != "" {
			body = text + "\n\n"
		}
		if _, err := io.WriteString(w, body); err != nil {
			return fmt.Errorf("write srt: %w", err)
		}
	}
	return nil
}

// Entry is one subtitle item. Only its text is mutable.
type Entry struct {
	item     *astisub.Item
	position int
}

// Index returns the entry's number as written in the source file, falling
// back to its 1-based position when the file carried none.
func (e *Entry) Index() int {
	if e.item.Index > 0 {
		return e.item.Index
	}
	return e.position
}

// Start returns the time the entry appears.
func (e *Entry) Start() time.Duration {
	return e.item.StartAt
}

// End returns the time the entry disappears.
func (e *Entry) End() time.Duration {
	return e.item.EndAt
}

// Text returns the entry's lines joined with "\n".
func (e *Entry) Text() string {
	lines := make([]string, 0, len(e.item.Lines))
	for _, line := range e.item.Lines {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// SetText replaces the entry's lines. Empty text leaves the entry without lines.
func (e *Entry) SetText(text string) {
	if text == "" {
		e.item.Lines = nil
		return
	}
	parts := strings.Split(text, "\n")
	lines := make([]astisub.Line, 0, len(parts))
	for _, part := range parts {
		lines = append(lines, astisub.Line{Items: []astisub.LineItem{{Text: part}}})
	}
	e.item.Lines = lines
}

// FormatTimestamp renders d as an SRT timestamp (HH:MM:SS,mmm).
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d,%03d", ms/3_600_000, ms/60_000%60, ms/1000%60, ms%1000)
}
