// Package orchestration turns a configuration into check plans, runs them
// one at a time and compares their verdicts. It decouples the checking
// engine from presentation via the ProgressReporter and ResultPresenter
// interfaces.
package orchestration
