// SPDX-License-Identifier: MIT

// Package heuristic verifies a heuristic against the true edge costs of a
// state space.
//
// Two independent checks are offered, both reporting one condition per item in
// ascending node-ID order so reports are reproducible:
//
//   - CheckOptimistic (admissibility): for every node n, a uniform-cost search
//     from n, with successors re-sorted by ID, serves as the oracle for h*(n).
//     The node passes iff h(n) <= h*(n). When no goal is reachable from n the
//     oracle reports h*(n) = 0, so such nodes pass only with h(n) <= 0.
//   - CheckConsistent: for every edge n→m with cost c the edge passes iff
//     h(n) <= h(m) + c.
//
// The verdict of each check is the conjunction of its conditions. Comparisons
// use full float64 precision; rounding is a presentation concern of package report.
//
// Oracle searches are sequential by default. WithWorkers(n) runs them on n
// goroutines; conditions are stored by index, so the report order never
// depends on scheduling.
package heuristic
