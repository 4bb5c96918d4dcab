package subtitles_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/encoding/unicode"

	"dronesrt/internal/subtitles"
	"dronesrt/internal/testsupport"
)

func fixture() string {
	return testsupport.SRT(
		testsupport.FlightCue(0, "2015.08.01", "10:00:00", 8.5404, 47.3704, "12.3"),
		testsupport.FlightCue(1, "2015.08.01", "10:00:01", 8.5405, 47.3705, "12.9"),
	)
}

func TestReadExposesEntries(t *testing.T) {
	track, err := subtitles.Read(strings.NewReader(fixture()))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if track.Len() != 2 {
		t.Fatalf("Len = %d, want 2", track.Len())
	}
	entries := track.Entries()
	if entries[1].Index() != 2 {
		t.Fatalf("Index = %d, want 2", entries[1].Index())
	}
	if entries[1].Start() != time.Second || entries[1].End() != 2*time.Second {
		t.Fatalf("unexpected timing %v --> %v", entries[1].Start(), entries[1].End())
	}
	text := entries[0].Text()
	if !strings.Contains(text, "GPS(8.5404,47.3704,16) BAROMETER:12.3") {
		t.Fatalf("unexpected text %q", text)
	}
	if got := strings.Count(text, "\n"); got != 2 {
		t.Fatalf("expected three lines, got %q", text)
	}
	if len(track.TextEntries()) != 2 {
		t.Fatal("TextEntries should mirror Entries")
	}
}

func TestReadDecodesByteOrderMarks(t *testing.T) {
	withBOM := "\ufeff" + fixture()
	track, err := subtitles.Read(strings.NewReader(withBOM))
	if err != nil {
		t.Fatalf("Read UTF-8 BOM: %v", err)
	}
	if track.Entries()[0].Index() != 1 {
		t.Fatalf("BOM leaked into first index: %d", track.Entries()[0].Index())
	}

	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	utf16, err := encoder.String(fixture())
	if err != nil {
		t.Fatalf("encode utf16: %v", err)
	}
	track, err = subtitles.Read(strings.NewReader(utf16))
	if err != nil {
		t.Fatalf("Read UTF-16: %v", err)
	}
	if track.Len() != 2 || !strings.Contains(track.Entries()[1].Text(), "BAROMETER:12.9") {
		t.Fatalf("unexpected UTF-16 decode: %d entries", track.Len())
	}
}

func TestReadRejectsEmptyInput(t *testing.T) {
	_, err := subtitles.Read(strings.NewReader(""))
	if !errors.Is(err, subtitles.ErrEmptyTrack) {
		t.Fatalf("expected ErrEmptyTrack, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := subtitles.Open(filepath.Join(t.TempDir(), "missing.srt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWritePreservesTimingAndClearsText(t *testing.T) {
	path := testsupport.WriteSRT(t, filepath.Join(t.TempDir(), "in.srt"),
		testsupport.FlightCue(0, "2015.08.01", "10:00:00", 8.5404, 47.3704, "12.3"),
		testsupport.FlightCue(1, "2015.08.01", "10:00:01", 8.5405, 47.3705, "12.9"),
		testsupport.FlightCue(2, "2015.08.01", "10:00:02", 8.5406, 47.3706, "13.4"),
	)
	track, err := subtitles.Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	entries := track.Entries()
	entries[0].SetText("12.3m; ")
	entries[1].SetText("")
	entries[2].SetText("a\nb")

	var buf bytes.Buffer
	if err := track.Write(&buf); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	reread, err := subtitles.Read(&buf)
	if err != nil {
		t.Fatalf("re-read written track: %v", err)
	}
	if reread.Len() != 3 {
		t.Fatalf("entry count changed: %d", reread.Len())
	}
	for i, entry := range reread.Entries() {
		if entry.Index() != i+1 {
			t.Fatalf("entry %d index = %d", i, entry.Index())
		}
		if entry.Start() != time.Duration(i)*time.Second || entry.End() != time.Duration(i+1)*time.Second {
			t.Fatalf("entry %d timing changed: %v --> %v", i, entry.Start(), entry.End())
		}
	}
	got := reread.Entries()
	if strings.TrimSpace(got[0].Text()) != "12.3m;" {
		t.Fatalf("entry 1 text = %q", got[0].Text())
	}
	if got[1].Text() != "" {
		t.Fatalf("entry 2 should be empty, got %q", got[1].Text())
	}
	if got[2].Text() != "a\nb" {
		t.Fatalf("entry 3 text = %q", got[2].Text())
	}
}

func TestWriteKeepsSourceNumbering(t *testing.T) {
	src := "7\n00:00:00,000 --> 00:00:01,000\nBAROMETER:12.3\n\n" +
		"9\n00:00:01,000 --> 00:00:02,000\nBAROMETER:12.9\n\n"
	track, err := subtitles.Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	track.Entries()[0].SetText("12.3m; ")
	track.Entries()[1].SetText("")

	var buf bytes.Buffer
	if err := track.Write(&buf); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := buf.String()
	if strings.HasPrefix(out, "\ufeff") {
		t.Fatalf("output should not start with a byte order mark: %q", out)
	}
	want := "7\n00:00:00,000 --> 00:00:01,000\n12.3m; \n\n" +
		"9\n00:00:01,000 --> 00:00:02,000\n\n"
	if out != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out, want)
	}

	reread, err := subtitles.Read(strings.NewReader(out))
	if err != nil {
		t.Fatalf("re-read written track: %v", err)
	}
	entries := reread.Entries()
	if len(entries) != 2 || entries[0].Index() != 7 || entries[1].Index() != 9 {
		t.Fatalf("numbering not preserved: %d entries", len(entries))
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00,000"},
		{1500 * time.Millisecond, "00:00:01,500"},
		{time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond, "01:02:03,004"},
		{-time.Second, "00:00:00,000"},
	}
	for _, tt := range tests {
		if got := subtitles.FormatTimestamp(tt.in); got != tt.want {
			t.Fatalf("FormatTimestamp(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
