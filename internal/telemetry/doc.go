// Package telemetry extracts flight telemetry from the text of drone overlay
// subtitles and renders it back as compact subtitle text.
//
// Each subtitle entry is split into tokens. Stateless filters recognise
// barometer and ultrasonic heights, dates and clock times; stateful trackers
// derive ground speed from consecutive GPS fixes and elapsed flight time from
// the first clock time of the run. A Processor owns the tracker state for one
// run, so two tracks processed side by side need two processors.
//
// Tokens that do not match a field are never errors: they are assumed to
// belong to another field or to be plain text, and contribute nothing.
package telemetry
