// SPDX-License-Identifier: MIT

// Package loader parses the textual state-space and heuristic formats into a
// core.Graph.
//
// State-space format (lines beginning with '#' and blank lines are ignored):
//
//	# comment
//	A                 ← start state
//	C D               ← goal states, space separated
//	A: B,1 C,4        ← transitions: state ':' then neighbor,cost pairs
//	B: C,2
//	C:
//
// Heuristic format:
//
//	A: 3
//	B: 2
//
// States referenced before (or without) their own transition line are created
// on demand with no edges and heuristic 0. Heuristic values for states the
// graph does not contain are ignored. Any malformed number or missing
// separator aborts the whole load with ErrParse; no partial graph is returned.
package loader
