// Command dronesrt rewrites the telemetry subtitle track recorded by a
// Phantom 3 flight into a compact overlay.
//
// Subcommands:
//   - customize: keep selected fields (heights, date, time, duration, speed)
//   - inspect: tabulate what each entry carries
//   - track: export the GPS fixes as a GPX flight path
//   - config: create or validate the configuration file
package main
