// Package subtitles is the SRT container around the telemetry processor.
//
// Tracks are decoded with go-astisub after a BOM-aware transcoding step, so
// UTF-8 files with a byte order mark and UTF-16 files read the same as plain
// UTF-8. Entries expose their text through the telemetry.Entry interface;
// index and timing stay with the underlying items and are written back
// unchanged.
package subtitles
