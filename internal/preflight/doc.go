// Package preflight provides readiness checks for the filesystem paths a
// dronesrt run reads and writes.
//
// Commands call RunAll before any subtitle data is read; if any check fails
// the run stops with an error listing the failed checks, so nothing is
// processed only to fail at write time.
package preflight
