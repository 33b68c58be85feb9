package orchestration

import (
	"fmt"

	"github.com/agbru/primecheck/internal/config"
	"github.com/agbru/primecheck/internal/primality"
)

// Plan is one check to run: a strategy with its segment count and pool size.
type Plan struct {
	// Strategy is the registry key of Checker.
	Strategy string
	Checker  primality.Checker
	Segments int
	PoolSize int
}

// Label returns a short description such as "pool s=4 p=2".
func (p Plan) Label() string {
	return fmt.Sprintf("%s s=%d p=%d", p.Strategy, p.Segments, p.PoolSize)
}

type demoStep struct {
	strategy string
	segments int
	poolSize int
}

// demoSteps mirrors the fixed demonstration run: the sequential strategy
// with one to three segments, then the pooled strategies.
var demoSteps = []demoStep{
	{primality.StrategySequential, 1, 1},
	{primality.StrategySequential, 2, 1},
	{primality.StrategySequential, 3, 1},
	{primality.StrategyPool, 2, 2},
	{primality.StrategyPool, 4, 2},
	{primality.StrategyPool, 4, 4},
	{primality.StrategyFuture, 2, 2},
}

// GetChecksToRun determines which plans should be executed based on the
// configuration. With cfg.Strategy set to "all" it returns one plan per
// registered strategy in sorted key order. Unknown strategies yield nil.
// cfg.PoolSize should already be resolved (see config.ApplyAdaptivePoolSize).
//
// Parameters:
//   - cfg: The application configuration containing the strategy selection.
//   - registry: The registry to retrieve checkers from.
//
// Returns:
//   - []Plan: The plans to execute, in order.
func GetChecksToRun(cfg config.AppConfig, registry *primality.Registry) []Plan {
	if cfg.Demo {
		return DemoPlans(registry)
	}

	keys := []string{cfg.Strategy}
	if cfg.Strategy == config.StrategyAll {
		keys = registry.List() // List() returns sorted keys
	}

	plans := make([]Plan, 0, len(keys))
	for _, k := range keys {
		checker, err := registry.Get(k)
		if err != nil {
			continue
		}
		plans = append(plans, newPlan(k, checker, cfg.Segments, cfg.PoolSize))
	}
	if len(plans) == 0 {
		return nil
	}
	return plans
}

// DemoPlans returns the fixed demonstration plan list.
func DemoPlans(registry *primality.Registry) []Plan {
	plans := make([]Plan, 0, len(demoSteps))
	for _, step := range demoSteps {
		checker, err := registry.Get(step.strategy)
		if err != nil {
			continue
		}
		plans = append(plans, newPlan(step.strategy, checker, step.segments, step.poolSize))
	}
	return plans
}

func newPlan(key string, checker primality.Checker, segments, poolSize int) Plan {
	if key == primality.StrategySequential {
		poolSize = 1
	}
	return Plan{Strategy: key, Checker: checker, Segments: segments, PoolSize: poolSize}
}
