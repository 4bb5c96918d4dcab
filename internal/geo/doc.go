// Package geo holds the spherical geometry used to derive ground speed from
// consecutive GPS fixes.
package geo
