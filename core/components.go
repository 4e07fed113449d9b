// File: components.go
// Role: Connected-component enumeration over the undirected view.

package core

import "sort"

// ConnectedComponents returns the connected components of the graph,
// treating every edge as undirected (weak connectivity on directed
// graphs). Each component is a sorted slice of vertex IDs, and the
// components themselves are ordered by their smallest member, so the
// output is fully deterministic.
//
// Complexity: O(V log V + E).
func (g *Graph) ConnectedComponents() [][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seeds := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		seeds = append(seeds, id)
	}
	sort.Strings(seeds)

	seen := make(map[string]bool, len(seeds))
	var comps [][]string

	for _, seed := range seeds {
		if seen[seed] {
			continue
		}
		// BFS from the seed; undirected view means following both
		// adjacency and inbound buckets on directed graphs.
		queue := []string{seed}
		seen[seed] = true
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for v := range g.adjacency[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
			if g.directed {
				for v := range g.inbound[u] {
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
		}

		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps
}
