// SPDX-License-Identifier: MIT

package search

// breadthFirst: FIFO open list; a child is enqueued iff its ID has never been
// visited, so the same ID may be queued more than once.
func (r *runner) breadthFirst(start string) (*Result, error) {
	queue := []int{r.root(start)}
	visited := make(map[string]struct{})

	for len(queue) > 0 {
		if err := r.cancelled(); err != nil {
			return nil, err
		}
		n := queue[0]
		queue = queue[1:]
		id := r.nodes.at(n).id
		if r.goal(id) {
			return r.success(n, len(visited)), nil
		}
		visited[id] = struct{}{}
		r.opts.OnExpand(id, 0)

		for _, m := range r.expand(n) {
			if _, seen := visited[r.nodes.at(m).id]; !seen {
				queue = append(queue, m)
			}
		}
	}

	return r.fail(len(visited)), nil
}

// uniformCost: min-heap on (g, ID). Children with a visited ID are dropped,
// and heap entries whose ID was closed meanwhile are discarded on removal;
// with non-negative costs the first removal of an ID is already optimal.
func (r *runner) uniformCost(start string) (*Result, error) {
	open := newOpenHeap(r.nodes, byCostThenID)
	open.push(r.root(start))
	visited := make(map[string]int)

	for open.Len() > 0 {
		if err := r.cancelled(); err != nil {
			return nil, err
		}
		n := open.pop()
		cur := r.nodes.at(n)
		id, g := cur.id, cur.g
		if r.goal(id) {
			return r.success(n, len(visited)), nil
		}
		if _, closed := visited[id]; closed {
			continue
		}
		visited[id] = n
		r.opts.OnExpand(id, g)

		for _, m := range r.expand(n) {
			if _, closed := visited[r.nodes.at(m).id]; !closed {
				open.push(m)
			}
		}
	}

	return r.fail(len(visited)), nil
}

// aStar: min-heap on f = g + h with insertion-order ties. Every ID lives at
// most once in open ∪ visited. A generated child m meeting an existing m' is
// discarded iff g(m') < g(m); otherwise m' is removed from wherever it resides
// (reopening closed states) and m takes its place.
//
// A child whose own ID already appears on its parent chain closes a cycle and
// is discarded before that rule applies. With non-negative costs such a path
// is never cheaper, and keeping it on a zero-cost cycle would reopen states
// forever.
func (r *runner) aStar(start string) (*Result, error) {
	open := newOpenHeap(r.nodes, byEstimateThenInsertion)
	s := r.root(start)
	open.push(s)
	inOpen := map[string]int{start: s}
	visited := make(map[string]int)

	for open.Len() > 0 {
		if err := r.cancelled(); err != nil {
			return nil, err
		}
		n := open.pop()
		cur := r.nodes.at(n)
		id, g := cur.id, cur.g
		delete(inOpen, id)
		if r.goal(id) {
			return r.success(n, len(visited)), nil
		}
		visited[id] = n
		r.opts.OnExpand(id, g)

		for _, m := range r.expand(n) {
			child := r.nodes.at(m)
			cid, cg := child.id, child.g
			if r.nodes.onChain(child.parent, cid) {
				continue
			}

			if prev, ok := visited[cid]; ok {
				if r.nodes.at(prev).g < cg {
					continue
				}
				delete(visited, cid)
			} else if prev, ok := inOpen[cid]; ok {
				if r.nodes.at(prev).g < cg {
					continue
				}
				open.remove(prev)
				delete(inOpen, cid)
			}
			open.push(m)
			inOpen[cid] = m
		}
	}

	return r.fail(len(visited)), nil
}
