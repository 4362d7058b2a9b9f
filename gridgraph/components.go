// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells under
// gg.Conn. Each component lists row-major cell indices in BFS order; the
// components themselves are ordered by their first cell in row-major scan.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	_, comps := gg.flood()

	return comps
}

// Connected reports whether b is reachable from a by moves over passable cells.
func (gg *GridGraph) Connected(a, b Point) bool {
	if !gg.Passable(a) || !gg.Passable(b) {
		return false
	}
	labels, _ := gg.flood()

	return labels[gg.index(a.X, a.Y)] == labels[gg.index(b.X, b.Y)]
}

// flood labels every passable cell with its component number (walls get -1)
// and collects the members of each component.
func (gg *GridGraph) flood() ([]int, [][]int) {
	labels := make([]int, gg.Width*gg.Height)
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if gg.CellValues[y][x] < 1 || labels[i0] >= 0 {
				continue
			}
			id := len(comps)
			queue := []int{i0}
			labels[i0] = id
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.NeighborOffsets() {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || gg.CellValues[vy][vx] < 1 {
						continue
					}
					if vi := gg.index(vx, vy); labels[vi] < 0 {
						labels[vi] = id
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return labels, comps
}
