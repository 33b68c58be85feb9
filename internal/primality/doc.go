// Package primality decides whether an integer is prime by splitting the
// candidate-divisor range into segments and scanning them concurrently.
//
// Three strategies share the same partitioning and segment scan and differ
// only in how segments are executed and how their outcomes are combined:
//
//   - SequentialChecker runs every segment on a single dedicated worker.
//   - PooledChecker runs segments on a fixed pool; each task lowers a shared
//     monotonic Verdict.
//   - FutureChecker runs segments on a fixed pool; each task returns its own
//     outcome through a Future and the caller reduces them with AND.
//
// The segment scan tries every candidate d in [max(2, start), end), so a
// check is linear in the candidate.
package primality
