package telemetry

// FieldKind identifies one of the telemetry fields the processor can emit.
type FieldKind string

const (
	FieldHeightBarometer  FieldKind = "height_barometer"
	FieldHeightUltrasonic FieldKind = "height_ultrasonic"
	FieldDate             FieldKind = "date"
	FieldTime             FieldKind = "time"
	FieldDuration         FieldKind = "duration"
	FieldSpeed            FieldKind = "speed"
)

// Separator terminates every emitted fragment.
const Separator = "; "

var labels = map[FieldKind]string{
	FieldHeightBarometer:  "Height (b):",
	FieldHeightUltrasonic: "Height (u):",
	FieldDate:             "Date:",
	FieldTime:             "Time:",
	FieldDuration:         "Duration:",
	FieldSpeed:            "Speed:",
}

// AllFields lists the field kinds in processing order.
func AllFields() []FieldKind {
	return []FieldKind{
		FieldHeightBarometer,
		FieldHeightUltrasonic,
		FieldDate,
		FieldTime,
		FieldDuration,
		FieldSpeed,
	}
}

// Label returns the display label for kind, or "" for unknown kinds.
func (k FieldKind) Label() string {
	return labels[k]
}

// Format renders value as an output fragment, prefixed with the field label
// when useLabel is set.
func Format(kind FieldKind, useLabel bool, value string) string {
	out := value + Separator
	if useLabel {
		out = kind.Label() + " " + out
	}
	return out
}
