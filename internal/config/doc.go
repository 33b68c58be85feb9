// Package config resolves the primecheck run configuration.
//
// Values are resolved with the priority CLI flags > PRIMECHECK_* environment
// variables > defaults. A pool size left at zero is derived from the
// hardware by ApplyAdaptivePoolSize.
package config
