package telemetry

import "errors"

// ErrNoFields reports a selection without any field enabled.
var ErrNoFields = errors.New("no telemetry fields selected")

// Selection is the set of fields a run emits plus the label toggle.
// Barometer and ultrasonic heights may be enabled together.
type Selection struct {
	Barometer  bool `json:"barometer" yaml:"barometer"`
	Ultrasonic bool `json:"ultrasonic" yaml:"ultrasonic"`
	Date       bool `json:"date" yaml:"date"`
	Time       bool `json:"time" yaml:"time"`
	Duration   bool `json:"duration" yaml:"duration"`
	Speed      bool `json:"speed" yaml:"speed"`
	Label      bool `json:"label" yaml:"label"`
}

// AllSelected enables every field.
func AllSelected(useLabel bool) Selection {
	return Selection{
		Barometer:  true,
		Ultrasonic: true,
		Date:       true,
		Time:       true,
		Duration:   true,
		Speed:      true,
		Label:      useLabel,
	}
}

// Enabled reports whether kind is part of the selection.
func (s Selection) Enabled(kind FieldKind) bool {
	switch kind {
	case FieldHeightBarometer:
		return s.Barometer
	case FieldHeightUltrasonic:
		return s.Ultrasonic
	case FieldDate:
		return s.Date
	case FieldTime:
		return s.Time
	case FieldDuration:
		return s.Duration
	case FieldSpeed:
		return s.Speed
	default:
		return false
	}
}

// Fields returns the enabled field kinds in processing order.
func (s Selection) Fields() []FieldKind {
	var out []FieldKind
	for _, kind := range AllFields() {
		if s.Enabled(kind) {
			out = append(out, kind)
		}
	}
	return out
}

// Validate rejects a selection that would emit nothing.
func (s Selection) Validate() error {
	if len(s.Fields()) == 0 {
		return ErrNoFields
	}
	return nil
}
