package telemetry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dronesrt/internal/geo"
)

// TrackerState is the memory the derived-value trackers carry across the
// entries of one run. The zero value is an empty state.
type TrackerState struct {
	Speed    SpeedTracker
	Duration DurationTracker
}

// SpeedTracker derives ground speed from consecutive GPS fixes. The overlay
// emits one fix per second, so metres between fixes read as metres per second.
type SpeedTracker struct {
	last *Fix
}

// Last returns the most recent fix and whether one has been seen.
func (t *SpeedTracker) Last() (Fix, bool) {
	if t.last == nil {
		return Fix{}, false
	}
	return *t.last, true
}

// Observe returns the formatted speed for a GPS token, or "" for any other
// token. A malformed GPS token also yields "" together with an error wrapping
// ErrMalformedGPS; the error is informational and the stored fix is left
// unchanged.
func (t *SpeedTracker) Observe(token string, useLabel bool) (string, error) {
	value, ok, err := t.observe(token)
	if !ok {
		return "", err
	}
	return Format(FieldSpeed, useLabel, value), nil
}

func (t *SpeedTracker) observe(token string) (string, bool, error) {
	fix, err := ParseGPS(token)
	if err != nil {
		if errors.Is(err, ErrNotGPS) {
			return "", false, nil
		}
		return "", false, err
	}
	if t.last == nil {
		t.last = &fix
	}
	meters := geo.Haversine(t.last.Lon, t.last.Lat, fix.Lon, fix.Lat) * 1000
	current := fix
	t.last = &current
	return formatMeters(meters) + "m/s", true, nil
}

// DurationTracker reports time elapsed since the first clock time of a run.
type DurationTracker struct {
	first *time.Time
}

// First returns the reference clock time and whether one has been seen.
func (t *DurationTracker) First() (time.Time, bool) {
	if t.first == nil {
		return time.Time{}, false
	}
	return *t.first, true
}

// Observe returns the formatted elapsed time for a HH:MM:SS token, or "".
// Clock times earlier than the first one yield negative minutes; midnight
// rollover is not corrected.
func (t *DurationTracker) Observe(token string, useLabel bool) string {
	value, ok := t.observe(token)
	if !ok {
		return ""
	}
	return Format(FieldDuration, useLabel, value)
}

func (t *DurationTracker) observe(token string) (string, bool) {
	clock, err := ParseClock(token)
	if err != nil {
		return "", false
	}
	if t.first == nil {
		t.first = &clock
	}
	elapsed := int(clock.Sub(*t.first) / time.Second)
	return formatElapsed(elapsed), true
}

// formatElapsed renders whole seconds as MM:SS using floor division, so
// -2s renders as "-1:58".
func formatElapsed(seconds int) string {
	minutes := seconds / 60
	rest := seconds % 60
	if rest < 0 {
		rest += 60
		minutes--
	}
	return fmt.Sprintf("%02d:%02d", minutes, rest)
}

// formatMeters rounds to two decimals and renders the shortest decimal form
// with at least one fractional digit ("0.0", "12.3", "12.35").
func formatMeters(meters float64) string {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(meters, 'f', 2, 64), 64)
	if err != nil {
		rounded = meters
	}
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
