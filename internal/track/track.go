// Package track turns the GPS fixes embedded in an overlay subtitle track
// into a GPX 1.1 flight path.
package track

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tkrajina/gpxgo/gpx"

	"dronesrt/internal/geo"
	"dronesrt/internal/telemetry"
)

// ErrNoFixes reports a subtitle track without any readable GPS fix.
var ErrNoFixes = errors.New("no gps fixes found")

// Point is one fix of the flight path.
type Point struct {
	// Entry is the 1-based position of the subtitle entry the fix came from.
	Entry        int
	Lon          float64
	Lat          float64
	Time         time.Time
	HasTime      bool
	// Elevation is the barometer height in metres above the take-off
	// point, not above sea level.
	Elevation    float64
	HasElevation bool
}

// Summary describes a collected path.
type Summary struct {
	Points     int
	Skipped    int
	DistanceKm float64
	Elapsed    time.Duration
}

// Collect reads the first GPS fix of every entry. The entry's date and clock
// tokens, when both present, become the point's timestamp (UTC) and its
// barometer height the elevation. The overlay has no absolute altitude, so
// the GPX ele values are relative to the take-off point and read as a
// profile, not as heights above sea level. Entries without a readable fix
// are skipped.
func Collect(entries []telemetry.Entry) ([]Point, error) {
	var points []Point
	for i, entry := range entries {
		if p, ok := collectEntry(entry.Text()); ok {
			p.Entry = i + 1
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		return nil, ErrNoFixes
	}
	return points, nil
}

func collectEntry(text string) (Point, bool) {
	var (
		p           Point
		haveFix     bool
		date, clock time.Time
		haveDate    bool
		haveClock   bool
	)
	for _, token := range telemetry.Tokenize(text) {
		if !haveFix {
			if fix, err := telemetry.ParseGPS(token); err == nil {
				p.Lon, p.Lat, haveFix = fix.Lon, fix.Lat, true
				continue
			}
		}
		if !haveDate {
			if d, err := telemetry.ParseDate(token); err == nil {
				date, haveDate = d, true
				continue
			}
		}
		if !haveClock {
			if c, err := telemetry.ParseClock(token); err == nil {
				clock, haveClock = c, true
				continue
			}
		}
		if !p.HasElevation {
			if h, err := telemetry.ParseHeight(token, telemetry.HeightBarometer); err == nil {
				p.Elevation, p.HasElevation = h.Meters, true
			}
		}
	}
	if haveDate && haveClock {
		p.Time = time.Date(date.Year(), date.Month(), date.Day(),
			clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
		p.HasTime = true
	}
	return p, haveFix
}

// Summarize computes the path length and the time between the first and
// last timestamped points.
func Summarize(points []Point, entries int) Summary {
	s := Summary{Points: len(points), Skipped: entries - len(points)}
	var first, last *Point
	for i := range points {
		if i > 0 {
			prev := points[i-1]
			s.DistanceKm += geo.Haversine(prev.Lon, prev.Lat, points[i].Lon, points[i].Lat)
		}
		if points[i].HasTime {
			if first == nil {
				first = &points[i]
			}
			last = &points[i]
		}
	}
	if first != nil {
		s.Elapsed = last.Time.Sub(first.Time)
	}
	return s
}

// GPX builds a single-track, single-segment document named name.
func GPX(name string, points []Point) *gpx.GPX {
	segment := gpx.GPXTrackSegment{Points: make([]gpx.GPXPoint, 0, len(points))}
	for _, p := range points {
		gp := gpx.GPXPoint{Point: gpx.Point{Latitude: p.Lat, Longitude: p.Lon}}
		if p.HasElevation {
			gp.Elevation.SetValue(p.Elevation)
		}
		if p.HasTime {
			gp.Timestamp = p.Time
		}
		segment.Points = append(segment.Points, gp)
	}
	return &gpx.GPX{
		Creator: "dronesrt",
		Name:    name,
		Tracks: []gpx.GPXTrack{{
			Name:     name,
			Segments: []gpx.GPXTrackSegment{segment},
		}},
	}
}

// Write encodes points as indented GPX 1.1.
func Write(w io.Writer, name string, points []Point) error {
	data, err := GPX(name, points).ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return fmt.Errorf("encode gpx: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write gpx: %w", err)
	}
	return nil
}
