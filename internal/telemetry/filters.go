package telemetry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Layouts accept one or two digit components on input and always render
// zero padded.
const (
	dateParseLayout  = "2006.1.2"
	dateRenderLayout = "2006.01.02"
	timeParseLayout  = "15:4:5"
	timeRenderLayout = "15:04:05"
)

var (
	// ErrNotGPS reports a token without the GPS prefix.
	ErrNotGPS = errors.New("not a gps token")
	// ErrMalformedGPS reports a GPS token whose coordinate pair cannot be read.
	ErrMalformedGPS = errors.New("malformed gps token")
	// ErrNotHeight reports a token without the prefix of the requested sensor.
	ErrNotHeight = errors.New("not a height token")
	// ErrMalformedHeight reports a height token without a numeric value.
	ErrMalformedHeight = errors.New("malformed height token")
)

// HeightMode selects which altitude sensor a height token comes from.
type HeightMode int

const (
	HeightBarometer HeightMode = iota
	HeightUltrasonic
)

// Prefix returns the token prefix the overlay prints for the sensor.
func (m HeightMode) Prefix() string {
	if m == HeightUltrasonic {
		return "ULTRASONIC"
	}
	return "BAROMETER"
}

// Field returns the field kind the sensor's height is reported under.
func (m HeightMode) Field() FieldKind {
	if m == HeightUltrasonic {
		return FieldHeightUltrasonic
	}
	return FieldHeightBarometer
}

func (m HeightMode) String() string {
	if m == HeightUltrasonic {
		return "ultrasonic"
	}
	return "barometer"
}

// Height is a parsed height reading. Text keeps the value as printed.
type Height struct {
	Text   string
	Meters float64
}

// Fix is a GPS position in degrees.
type Fix struct {
	Lon float64
	Lat float64
}

// ParseHeight reads a "BAROMETER:<m>" or "ULTRASONIC:<m>" token.
func ParseHeight(token string, mode HeightMode) (Height, error) {
	if !strings.HasPrefix(token, mode.Prefix()) {
		return Height{}, ErrNotHeight
	}
	parts := strings.Split(token, ":")
	if len(parts) < 2 {
		return Height{}, fmt.Errorf("%w: %q has no value", ErrMalformedHeight, token)
	}
	meters, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || math.IsNaN(meters) || math.IsInf(meters, 0) {
		return Height{}, fmt.Errorf("%w: %q", ErrMalformedHeight, token)
	}
	return Height{Text: parts[1], Meters: meters}, nil
}

// ParseDate reads a YYYY.MM.DD token.
func ParseDate(token string) (time.Time, error) {
	return time.Parse(dateParseLayout, token)
}

// ParseClock reads a 24h HH:MM:SS token. Fractional seconds are rejected.
func ParseClock(token string) (time.Time, error) {
	if strings.ContainsAny(token, ".,") {
		return time.Time{}, fmt.Errorf("parse clock %q: fractional seconds not supported", token)
	}
	return time.Parse(timeParseLayout, token)
}

// ParseGPS reads a "GPS(<lon>,<lat>[,...])" token. Tokens without the prefix
// return ErrNotGPS; tokens with the prefix but no readable pair return an
// error wrapping ErrMalformedGPS.
func ParseGPS(token string) (Fix, error) {
	if !strings.HasPrefix(token, "GPS") {
		return Fix{}, ErrNotGPS
	}
	parts := strings.Split(gpsDelimiters.Replace(token), ",")
	if len(parts) < 3 {
		return Fix{}, fmt.Errorf("%w: %q has no coordinate pair", ErrMalformedGPS, token)
	}
	lon, err := parseCoordinate(parts[1])
	if err != nil {
		return Fix{}, fmt.Errorf("%w: longitude in %q: %v", ErrMalformedGPS, token, err)
	}
	lat, err := parseCoordinate(parts[2])
	if err != nil {
		return Fix{}, fmt.Errorf("%w: latitude in %q: %v", ErrMalformedGPS, token, err)
	}
	return Fix{Lon: lon, Lat: lat}, nil
}

var gpsDelimiters = strings.NewReplacer("(", ",", ")", ",")

func parseCoordinate(value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", value)
	}
	return v, nil
}

// FilterHeight returns the formatted height for a matching token, or "".
func FilterHeight(token string, mode HeightMode, useLabel bool) string {
	h, err := ParseHeight(token, mode)
	if err != nil {
		return ""
	}
	return Format(mode.Field(), useLabel, h.Text+"m")
}

// FilterDate returns the formatted date for a YYYY.MM.DD token, or "".
func FilterDate(token string, useLabel bool) string {
	value, ok := dateValue(token)
	if !ok {
		return ""
	}
	return Format(FieldDate, useLabel, value)
}

// FilterTime returns the formatted clock time for a HH:MM:SS token, or "".
func FilterTime(token string, useLabel bool) string {
	value, ok := clockValue(token)
	if !ok {
		return ""
	}
	return Format(FieldTime, useLabel, value)
}

func dateValue(token string) (string, bool) {
	d, err := ParseDate(token)
	if err != nil {
		return "", false
	}
	return d.Format(dateRenderLayout), true
}

func clockValue(token string) (string, bool) {
	t, err := ParseClock(token)
	if err != nil {
		return "", false
	}
	return t.Format(timeRenderLayout), true
}
