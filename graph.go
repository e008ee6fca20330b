package aoc

// DisjointSet is a union-find forest over the integers 0..n-1.
type DisjointSet struct {
	parent []int
	size   []int
	sets   int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Find returns the representative of x's set.
func (d *DisjointSet) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}
	return root
}

// Union merges the sets of x and y. It reports whether they were
// separate.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	d.sets--
	return true
}

// Sets returns the number of disjoint sets.
func (d *DisjointSet) Sets() int {
	return d.sets
}

// Sizes returns the size of every set, in no particular order.
func (d *DisjointSet) Sizes() []int {
	var out []int
	for i, p := range d.parent {
		if p == i {
			out = append(out, d.size[i])
		}
	}
	return out
}

// DAG is a directed graph meant to be acyclic.
type DAG[K comparable] struct {
	Nodes map[K]bool
	Edges map[K][]K
}

func (g *DAG[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddEdge adds the edge a -> b, adding both nodes as needed.
func (g *DAG[K]) AddEdge(a, b K) {
	g.AddNode(a)
	g.AddNode(b)
	InitMap(&g.Edges)
	g.Edges[a] = append(g.Edges[a], b)
}

// TopoOrder returns the nodes in topological order (Kahn's algorithm).
// Nodes on or behind a cycle never become free and are left out.
func (g *DAG[K]) TopoOrder() []K {
	indeg := make(map[K]int, len(g.Nodes))
	for _, outs := range g.Edges {
		for _, b := range outs {
			indeg[b]++
		}
	}
	var q Queue[K]
	for n := range g.Nodes {
		if indeg[n] == 0 {
			q.Push(n)
		}
	}
	order := make([]K, 0, len(g.Nodes))
	q.While(func(n K) bool {
		order = append(order, n)
		for _, b := range g.Edges[n] {
			if indeg[b]--; indeg[b] == 0 {
				q.Push(b)
			}
		}
		return true
	})
	return order
}

// CountPaths returns the number of distinct paths from a to b.
// Unknown nodes have no paths.
func (g *DAG[K]) CountPaths(a, b K) int {
	if !g.Nodes[a] || !g.Nodes[b] {
		return 0
	}
	ways := map[K]int{a: 1}
	for _, n := range g.TopoOrder() {
		if n == b {
			break
		}
		w := ways[n]
		if w == 0 {
			continue
		}
		for _, c := range g.Edges[n] {
			ways[c] += w
		}
	}
	return ways[b]
}

// InitMap allocates *m if it is nil.
func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
