// SPDX-License-Identifier: MIT

// Package report renders search results and heuristic verification reports
// in the line-oriented text format consumed by graders and diff-based tests.
//
// Search report:
//
//	# UCS
//	[FOUND_SOLUTION]: yes
//	[STATES_VISITED]: 3
//	[PATH_LENGTH]: 3
//	[TOTAL_COST]: 3.0
//	[PATH]: A => B => C
//
// Heuristic reports:
//
//	# HEURISTIC-OPTIMISTIC h.txt
//	[CONDITION]: [OK] h(A) <= h*: 3.0 <= 3.0
//	[CONCLUSION]: Heuristic is optimistic.
//
//	# HEURISTIC-CONSISTENT h.txt
//	[CONDITION]: [OK] h(A) <= h(B) + c: 3.0 <= 2.0 + 1.0
//	[CONCLUSION]: Heuristic is consistent.
//
// Numbers are shown with one decimal and '.' as separator, rounded half-up;
// only presentation is rounded, never the underlying comparison.
package report
