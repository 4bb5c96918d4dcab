package telemetry

import (
	"errors"
	"testing"
)

func TestFilterHeight(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		mode     HeightMode
		useLabel bool
		want     string
	}{
		{"barometer", "BAROMETER:12.3", HeightBarometer, false, "12.3m; "},
		{"barometer labelled", "BAROMETER:12.3", HeightBarometer, true, "Height (b): 12.3m; "},
		{"ultrasonic labelled", "ULTRASONIC:4.0", HeightUltrasonic, true, "Height (u): 4.0m; "},
		{"ultrasonic token with barometer mode", "ULTRASONIC:4.0", HeightBarometer, false, ""},
		{"barometer token with ultrasonic mode", "BAROMETER:12.3", HeightUltrasonic, false, ""},
		{"value kept as printed", "BAROMETER:-0.50", HeightBarometer, false, "-0.50m; "},
		{"missing value", "BAROMETER", HeightBarometer, false, ""},
		{"non numeric value", "BAROMETER:abc", HeightBarometer, false, ""},
		{"empty token", "", HeightBarometer, false, ""},
		{"plain text", "ISO:100", HeightBarometer, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterHeight(tt.token, tt.mode, tt.useLabel); got != tt.want {
				t.Fatalf("FilterHeight(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseHeightErrors(t *testing.T) {
	if _, err := ParseHeight("GPS(8,47)", HeightBarometer); !errors.Is(err, ErrNotHeight) {
		t.Fatalf("expected ErrNotHeight, got %v", err)
	}
	if _, err := ParseHeight("BAROMETER:", HeightBarometer); !errors.Is(err, ErrMalformedHeight) {
		t.Fatalf("expected ErrMalformedHeight, got %v", err)
	}
	h, err := ParseHeight("ULTRASONIC:4.25", HeightUltrasonic)
	if err != nil {
		t.Fatalf("ParseHeight returned error: %v", err)
	}
	if h.Meters != 4.25 || h.Text != "4.25" {
		t.Fatalf("unexpected height %+v", h)
	}
}

func TestFilterDate(t *testing.T) {
	tests := []struct {
		token    string
		useLabel bool
		want     string
	}{
		{"2015.08.01", false, "2015.08.01; "},
		{"2015.08.01", true, "Date: 2015.08.01; "},
		{"2015.8.1", false, "2015.08.01; "},
		{"2015-08-01", false, ""},
		{"2015.13.01", false, ""},
		{"2015.02.30", false, ""},
		{"15.08.01", false, ""},
		{"2015.08.01x", false, ""},
		{"10:00:00", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := FilterDate(tt.token, tt.useLabel); got != tt.want {
				t.Fatalf("FilterDate(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestFilterTime(t *testing.T) {
	tests := []struct {
		token    string
		useLabel bool
		want     string
	}{
		{"10:00:05", false, "10:00:05; "},
		{"23:59:59", true, "Time: 23:59:59; "},
		{"7:05:09", false, "07:05:09; "},
		{"24:00:00", false, ""},
		{"10:60:00", false, ""},
		{"10:00", false, ""},
		{"10:00:05.5", false, ""},
		{"2015.08.01", false, ""},
		{"BAROMETER:12.3", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := FilterTime(tt.token, tt.useLabel); got != tt.want {
				t.Fatalf("FilterTime(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseGPS(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    Fix
		wantErr error
	}{
		{"pair", "GPS(8.0,47.0)", Fix{Lon: 8.0, Lat: 47.0}, nil},
		{"pair with satellites", "GPS(8.5431,47.3667,15)", Fix{Lon: 8.5431, Lat: 47.3667}, nil},
		{"negative", "GPS(-122.4194,37.7749)", Fix{Lon: -122.4194, Lat: 37.7749}, nil},
		{"not gps", "BAROMETER:12.3", Fix{}, ErrNotGPS},
		{"empty", "", Fix{}, ErrNotGPS},
		{"prefix only", "GPS", Fix{}, ErrMalformedGPS},
		{"split by space", "GPS(8.0,", Fix{}, ErrMalformedGPS},
		{"leading empty segment", "GPS(,8.0,47.0)", Fix{}, ErrMalformedGPS},
		{"letters", "GPS(abc,47.0)", Fix{}, ErrMalformedGPS},
		{"not a number", "GPS(NaN,47.0)", Fix{}, ErrMalformedGPS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGPS(tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseGPS(%q) error = %v, want %v", tt.token, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGPS(%q) returned error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Fatalf("ParseGPS(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestFormatLabels(t *testing.T) {
	for _, kind := range AllFields() {
		if kind.Label() == "" {
			t.Fatalf("missing label for %s", kind)
		}
	}
	if got := Format(FieldSpeed, false, "1.5m/s"); got != "1.5m/s; " {
		t.Fatalf("unexpected unlabelled format %q", got)
	}
	if got := Format(FieldDuration, true, "00:05"); got != "Duration: 00:05; " {
		t.Fatalf("unexpected labelled format %q", got)
	}
}
