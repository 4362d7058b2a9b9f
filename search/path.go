// SPDX-License-Identifier: MIT

package search

// reconstruct follows parent links from the terminal node back to the root
// and returns the start→goal ID sequence together with its true cost.
//
// The cost is recomputed from the Model over consecutive ID pairs rather than
// read from the terminal g, so search bookkeeping can never leak into the
// reported total. A pair unknown to the Model (possible only with a custom
// SuccessorFunc) falls back to the cost that function reported.
func reconstruct(m Model, a *arena, terminal int) ([]string, float64) {
	var rev []int
	for i := terminal; i != noParent; i = a.nodes[i].parent {
		rev = append(rev, i)
	}

	path := make([]string, len(rev))
	var total float64
	for k := range rev {
		n := a.nodes[rev[len(rev)-1-k]]
		path[k] = n.id
		if k == 0 {
			continue
		}
		if c, ok := m.Cost(path[k-1], n.id); ok {
			total += c
		} else {
			total += n.step
		}
	}

	return path, total
}

// PathCost sums the true edge costs of m along consecutive pairs of path.
// It returns false if any pair is not an edge of m. A path with fewer than
// two states costs 0.
func PathCost(m Model, path []string) (float64, bool) {
	var total float64
	for i := 1; i < len(path); i++ {
		c, ok := m.Cost(path[i-1], path[i])
		if !ok {
			return 0, false
		}
		total += c
	}

	return total, true
}
