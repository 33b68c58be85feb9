// Package logging defines the Logger used for diagnostics and error reports
// and its zerolog-backed implementation.
package logging
