// Package status is a lazily-registered atomic metrics registry: callers
// look up a named counter/gauge by key, getting back a stable pointer they
// can write to directly from hot paths without further locking.
package status
