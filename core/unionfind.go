// File: unionfind.go
// Role: Disjoint-set (union-find) over vertex IDs, with path compression
// and union by rank. Used by the causal separation algorithms to turn
// connected components into O(α) membership queries.

package core

// UnionFind maintains a partition of string IDs into disjoint sets.
// The zero value is not usable; construct with NewUnionFind.
// Not safe for concurrent use.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
}

// NewUnionFind creates a UnionFind with each of the given IDs in its
// own singleton set. Complexity: O(len(ids)).
func NewUnionFind(ids ...string) *UnionFind {
	u := &UnionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		u.Add(id)
	}

	return u
}

// Add registers id as a singleton set; no-op if already present.
func (u *UnionFind) Add(id string) {
	if _, ok := u.parent[id]; ok {
		return
	}
	u.parent[id] = id
	u.rank[id] = 0
}

// Find returns the representative of id's set, registering id as a
// singleton first if it was never seen. Amortized O(α(n)).
func (u *UnionFind) Find(id string) string {
	u.Add(id)
	// Iterative path halving: point each visited node at its grandparent.
	for u.parent[id] != id {
		u.parent[id] = u.parent[u.parent[id]]
		id = u.parent[id]
	}

	return id
}

// Union merges the sets of all given IDs into one. Zero or one ID is a
// no-op, so callers may pass arbitrary (possibly empty) groups.
func (u *UnionFind) Union(ids ...string) {
	if len(ids) < 2 {
		if len(ids) == 1 {
			u.Add(ids[0])
		}

		return
	}

	first := ids[0]
	for _, id := range ids[1:] {
		u.union2(first, id)
	}
}

// union2 merges two sets by rank.
func (u *UnionFind) union2(a, b string) {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		u.parent[ra] = rb

		return
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}

// Connected reports whether a and b currently share a set.
func (u *UnionFind) Connected(a, b string) bool {
	return u.Find(a) == u.Find(b)
}
