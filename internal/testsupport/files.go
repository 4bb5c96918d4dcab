package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Cue is one subtitle entry of a fixture track.
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// FlightCue builds the overlay text a Phantom 3 writes for one second of
// flight starting at second n (0-based).
func FlightCue(n int, date, clock string, lon, lat float64, barometer string) Cue {
	text := fmt.Sprintf("HOME(8.5400,47.3700) %s %s\nGPS(%.4f,%.4f,16) BAROMETER:%s\nISO:100 Shutter:60 EV: Fnum:F2.8",
		date, clock, lon, lat, barometer)
	return Cue{
		Start: time.Duration(n) * time.Second,
		End:   time.Duration(n+1) * time.Second,
		Text:  text,
	}
}

// SRT renders cues as an SRT document numbered from 1.
func SRT(cues ...Cue) string {
	var b strings.Builder
	for i, cue := range cues {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d\n%s --> %s\n", i+1, timestamp(cue.Start), timestamp(cue.End))
		if cue.Text != "" {
			b.WriteString(cue.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// WriteSRT writes cues as an SRT file at path, creating parent directories.
func WriteSRT(t testing.TB, path string, cues ...Cue) string {
	t.Helper()
	WriteText(t, path, SRT(cues...))
	return path
}

// WriteText writes content to path, creating parent directories.
func WriteText(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func timestamp(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d,%03d", ms/3_600_000, ms/60_000%60, ms/1000%60, ms%1000)
}
