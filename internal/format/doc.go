// Package format holds pure string formatting helpers for durations and
// byte counts shared by the presentation layers.
package format
