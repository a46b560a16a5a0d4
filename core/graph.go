// File: graph.go
// Role: the Graph store — a flat, undirected multigraph of
// GraphInterface vertices connected by typed Link edges, with the
// cross-graph union-merge behavior that makes per-interface graph
// identity transparent to callers.
//
// Every GraphInterface is born into its own singleton Graph (see
// NewSelfGIF et al. in gif.go), mirroring the original C++
// GraphInterface constructor. The first edge connecting two interfaces
// from different graphs folds the smaller graph into the larger one and
// invalidates the smaller; callers need not call Merge themselves, it
// falls out of AddEdge.
package core

import "github.com/google/uuid"

// adjEntry is one directed half of an undirected edge in a vertex's
// adjacency list.
type adjEntry struct {
	to   *GraphInterface
	link Link
}

// Graph is a store of GraphInterface vertices and Link edges. A Graph
// that has been folded into another by AddEdge is left Invalidated and
// must not be used again.
type Graph struct {
	id          uuid.UUID
	vertices    []*GraphInterface
	index       map[*GraphInterface]int
	adj         map[*GraphInterface][]adjEntry
	edges       []Link
	invalidated bool
}

// NewGraph constructs an empty Graph. Most callers never call this
// directly — GraphInterface constructors do it for each fresh interface,
// and AddEdge merges graphs together as edges are added.
func NewGraph() *Graph {
	return &Graph{
		id:    uuid.New(),
		index: make(map[*GraphInterface]int),
		adj:   make(map[*GraphInterface][]adjEntry),
	}
}

// ID returns the graph's debug identity. Stable across merges only for
// the surviving (target) graph.
func (g *Graph) ID() uuid.UUID { return g.id }

// Invalidated reports whether this graph was folded into another by a
// prior AddEdge call.
func (g *Graph) Invalidated() bool { return g.invalidated }

// NodeCount returns the number of distinct Node values reachable through
// this graph's vertices (a Node contributes once regardless of how many
// of its interfaces are members).
func (g *Graph) NodeCount() int {
	seen := make(map[*Node]struct{}, len(g.vertices))
	for _, v := range g.vertices {
		if v.node != nil {
			seen[v.node] = struct{}{}
		}
	}
	return len(seen)
}

// VertexCount returns the number of GraphInterface vertices in the
// graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Index returns v's dense position in this graph, stable until the next
// RemoveVertex call. Used by pathfinder to key its visited bitmaps.
func (g *Graph) Index(v *GraphInterface) (int, bool) {
	i, ok := g.index[v]
	return i, ok
}

// EdgeCount returns the number of Link edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

func (g *Graph) addVertex(v *GraphInterface) {
	if _, ok := g.index[v]; ok {
		return
	}
	g.index[v] = len(g.vertices)
	g.vertices = append(g.vertices, v)
	v.graph = g
}

// AddEdge binds link between from and to and records it in the graph(s)
// backing the two endpoints. If from and to belong to different graphs,
// the smaller graph (by vertex count) is folded into the larger one and
// left Invalidated; ties fold the second argument's graph into the
// first's. Returns ErrGraphInvalidated if the receiver or either
// endpoint's current graph was already folded away, ErrForeignVertex
// if neither endpoint belongs to the receiver, and propagates
// SetConnections errors from link (ErrLinkAlreadyBound,
// ErrInvalidHierarchy, ErrLinkFiltered, and so on) unchanged.
func (g *Graph) AddEdge(from, to *GraphInterface, link Link) error {
	if g.invalidated || from.graph.invalidated || to.graph.invalidated {
		return ErrGraphInvalidated
	}
	if from.graph != g && to.graph != g {
		return ErrForeignVertex
	}
	if err := link.SetConnections(from, to); err != nil {
		return err
	}

	target := from.graph
	if to.graph != target {
		target = merge(from.graph, to.graph)
	}

	// Last-writer-wins at a given endpoint pair: a prior link between the
	// same two interfaces is removed before the new one is recorded.
	if prior, ok := from.IsConnected(to); ok {
		_ = target.RemoveEdge(prior)
	}

	target.addVertex(from)
	target.addVertex(to)
	target.edges = append(target.edges, link)
	target.adj[from] = append(target.adj[from], adjEntry{to: to, link: link})
	target.adj[to] = append(target.adj[to], adjEntry{to: from, link: link})
	return nil
}

// Merge folds other into g: every vertex of other is rewritten to
// back-point at g, all caches are unioned, and other is left
// Invalidated. Most callers never need this directly — AddEdge merges
// on demand — but it is exposed for embedders stitching graphs
// together ahead of time. Returns ErrGraphInvalidated if either graph
// was already folded away.
func (g *Graph) Merge(other *Graph) error {
	if g.invalidated || other.invalidated {
		return ErrGraphInvalidated
	}
	if other == g {
		return nil
	}
	for _, v := range other.vertices {
		g.addVertex(v)
	}
	for v, entries := range other.adj {
		g.adj[v] = append(g.adj[v], entries...)
	}
	g.edges = append(g.edges, other.edges...)
	other.invalidate()
	return nil
}

// Invalidate marks g as merged-away and severs the graph→vertex
// ownership cycle by clearing the vertex set. Every subsequent mutating
// operation fails with ErrGraphInvalidated.
func (g *Graph) Invalidate() { g.invalidate() }

func (g *Graph) invalidate() {
	g.invalidated = true
	g.vertices = nil
	g.index = nil
	g.adj = nil
	g.edges = nil
}

// merge folds the smaller of a, b into the larger (ties fold b into a)
// and returns the surviving graph.
func merge(a, b *Graph) *Graph {
	target, source := a, b
	if len(b.vertices) > len(a.vertices) {
		target, source = b, a
	}
	for _, v := range source.vertices {
		target.addVertex(v)
	}
	for v, entries := range source.adj {
		target.adj[v] = append(target.adj[v], entries...)
	}
	target.edges = append(target.edges, source.edges...)
	source.invalidate()
	return target
}

// RemoveEdge removes link from the graph, dropping it from both
// endpoints' adjacency lists. Returns ErrEdgeNotFound if link is not
// present.
func (g *Graph) RemoveEdge(link Link) error {
	if g.invalidated {
		return ErrGraphInvalidated
	}
	idx := -1
	for i, e := range g.edges {
		if e == link {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrEdgeNotFound
	}
	g.edges = append(g.edges[:idx], g.edges[idx+1:]...)
	from, to := link.Endpoints()
	g.adj[from] = removeAdj(g.adj[from], link)
	g.adj[to] = removeAdj(g.adj[to], link)
	return nil
}

func removeAdj(entries []adjEntry, link Link) []adjEntry {
	out := entries[:0]
	for _, e := range entries {
		if e.link != link {
			out = append(out, e)
		}
	}
	return out
}

// RemoveVertex removes v and every incident edge from the graph.
// Returns ErrVertexNotFound if v is not a member.
func (g *Graph) RemoveVertex(v *GraphInterface) error {
	if g.invalidated {
		return ErrGraphInvalidated
	}
	idx, ok := g.index[v]
	if !ok {
		return ErrVertexNotFound
	}
	for _, e := range g.adj[v] {
		g.adj[e.to] = removeAdj(g.adj[e.to], e.link)
		for i, edge := range g.edges {
			if edge == e.link {
				g.edges = append(g.edges[:i], g.edges[i+1:]...)
				break
			}
		}
	}
	delete(g.adj, v)
	delete(g.index, v)
	g.vertices = append(g.vertices[:idx], g.vertices[idx+1:]...)
	for i := idx; i < len(g.vertices); i++ {
		g.index[g.vertices[i]] = i
	}
	return nil
}

// Edges returns every Link in the graph, in insertion order.
func (g *Graph) Edges() []Link {
	out := make([]Link, len(g.edges))
	copy(out, g.edges)
	return out
}

// Vertices returns every GraphInterface in the graph, in insertion
// order.
func (g *Graph) Vertices() []*GraphInterface {
	out := make([]*GraphInterface, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// Neighbors returns the (vertex, link) pairs incident on v, in the order
// the edges were added. Returns ErrVertexNotFound if v is not a member.
func (g *Graph) Neighbors(v *GraphInterface) ([]*GraphInterface, []Link, error) {
	if _, ok := g.index[v]; !ok {
		return nil, nil, ErrVertexNotFound
	}
	entries := g.adj[v]
	verts := make([]*GraphInterface, len(entries))
	links := make([]Link, len(entries))
	for i, e := range entries {
		verts[i] = e.to
		links[i] = e.link
	}
	return verts, links, nil
}

// BFSVisit performs a classic breadth-first walk over the neighbor map
// from the given start path. filter is called with the candidate path
// (start extended vertex by vertex) and the link about to be crossed,
// and its verdict gates traversal itself: a rejected extension is
// neither visited nor expanded, so filtering out a class of links
// changes the computed reachable set. A nil filter admits every
// extension. Returns the admitted vertices in first-visit order (the
// start vertices themselves are not included). This is the Graph-level
// traversal of the package's simple external interface — see the
// pathfinder package for the constrained, filter-pipeline path-finding
// engine used to answer "which legal compositions of links connect A
// and B".
func (g *Graph) BFSVisit(filter func(path []*GraphInterface, link Link) bool, start []*GraphInterface) []*GraphInterface {
	visited := make(map[*GraphInterface]struct{}, len(start))
	for _, v := range start {
		visited[v] = struct{}{}
	}
	queue := [][]*GraphInterface{start}
	var out []*GraphInterface
	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		if len(path) == 0 {
			continue
		}
		cur := path[len(path)-1]
		for _, e := range g.adj[cur] {
			if _, seen := visited[e.to]; seen {
				continue
			}
			next := make([]*GraphInterface, len(path)+1)
			copy(next, path)
			next[len(path)] = e.to
			if filter != nil && !filter(next, e.link) {
				continue
			}
			visited[e.to] = struct{}{}
			out = append(out, e.to)
			queue = append(queue, next)
		}
	}
	return out
}

// NodeProjection returns the distinct Node values owned by this graph's
// vertices, in first-seen order.
func (g *Graph) NodeProjection() []*Node {
	seen := make(map[*Node]struct{}, len(g.vertices))
	var out []*Node
	for _, v := range g.vertices {
		if v.node == nil {
			continue
		}
		if _, ok := seen[v.node]; ok {
			continue
		}
		seen[v.node] = struct{}{}
		out = append(out, v.node)
	}
	return out
}

// GraphStats is a point-in-time snapshot of a Graph's size, a thin
// convenience wrapper over VertexCount/EdgeCount/NodeCount.
type GraphStats struct {
	ID       uuid.UUID
	Vertices int
	Edges    int
	Nodes    int
}

// Stats returns a GraphStats snapshot of g.
func (g *Graph) Stats() GraphStats {
	return GraphStats{ID: g.id, Vertices: len(g.vertices), Edges: len(g.edges), Nodes: g.NodeCount()}
}

// NodesByNames resolves a set of full dotted names against every Node
// projected from this graph, returning the matches found. Names not
// found are simply absent from the result — callers wanting strict
// resolution should compare len(out) against len(names).
func (g *Graph) NodesByNames(names []string) map[string]*Node {
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}
	out := make(map[string]*Node, len(names))
	for _, n := range g.NodeProjection() {
		full := n.GetFullName(false)
		if _, ok := want[full]; ok {
			out[full] = n
		}
	}
	return out
}
