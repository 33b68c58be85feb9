package config

import (
	"runtime"

	"github.com/agbru/primecheck/internal/primality"
)

// Pool size resolution chain (highest priority first):
//   1. CLI flags (-pool, -p)
//   2. Environment variable (PRIMECHECK_POOL)
//   3. Hardware estimation (this file)

// ApplyAdaptivePoolSize fills in the pool size from the hardware when it
// was left at zero, preserving any explicit value.
func ApplyAdaptivePoolSize(cfg AppConfig) AppConfig {
	if cfg.PoolSize == 0 {
		cfg.PoolSize = EstimateOptimalPoolSize(cfg.Segments)
	}
	return cfg
}

// EstimateOptimalPoolSize returns one worker per logical CPU, capped at the
// number of segments since extra workers would sit idle.
func EstimateOptimalPoolSize(segments int) int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 1:
		return primality.DefaultPoolSize
	case segments > 0 && segments < numCPU:
		return segments
	default:
		return numCPU
	}
}
