// File: path.go
// Role: Path, the candidate vertex sequence a BFS frontier carries
// forward, and PathData, its shared copy-on-write split/join state.
//
// Extending a path copies the vertex list but shares the PathData with
// the parent until a filter actually pushes or pops a stack entry; the
// first mutation after an extension forks the data. The sharing is
// explicit (a shared bit with a unique fast path) rather than hidden
// behind a refcounted container.
package pathfinder

import "github.com/atopile/graphcore/core"

// PathStackElement records one hierarchy edge crossing: which parent
// interface was crossed, through which child, under what name, and in
// which direction. Two elements cancel out when their types and name
// agree and their directions oppose, so a path that descends into a
// child named "power" of one instance and climbs out of the same-typed
// "power" child of another instance is balanced.
type PathStackElement struct {
	ParentType string
	ChildType  string
	ParentGIF  *core.GraphInterface
	ChildGIF   *core.GraphInterface
	Name       string
	Up         bool
}

// matches reports whether e and other are the same hierarchy step taken
// in opposite directions.
func (e PathStackElement) matches(other PathStackElement) bool {
	return e.ParentType == other.ParentType &&
		e.ChildType == other.ChildType &&
		e.Name == other.Name &&
		e.Up != other.Up
}

// UnresolvedStackElement is one pending hierarchy crossing awaiting its
// inverse. Split marks crossings through a parent with more than one
// module-interface child — the ones that open a split obligation and
// halve the path's confidence.
type UnresolvedStackElement struct {
	Elem  PathStackElement
	Split bool
}

// PathData is the portion of a Path's state shared copy-on-write across
// the sibling paths produced by extension: the LIFO of unmatched
// hierarchy crossings, the append-only record of split events, and the
// completeness flag cleared once every split obligation is discharged.
type PathData struct {
	unresolvedStack []UnresolvedStackElement
	splitStack      []PathStackElement
	notComplete     bool
	shared          bool
}

func (d *PathData) clone() *PathData {
	return &PathData{
		unresolvedStack: append([]UnresolvedStackElement(nil), d.unresolvedStack...),
		splitStack:      append([]PathStackElement(nil), d.splitStack...),
		notComplete:     d.notComplete,
	}
}

// Path is a single candidate path through the graph: the ordered vertex
// sequence, the links traversed between them, the shared PathData, a
// confidence in (0, 1], and the transient flags the filter pipeline and
// the BFS engine communicate through. Path implements core.PathView, so
// conditional link predicates can inspect it.
type Path struct {
	vertices []*core.GraphInterface
	links    []core.Link
	data     *PathData

	confidence   float64
	filtered     bool
	stop         bool
	hibernated   bool
	wokenPartial bool
}

// NewPath starts a fresh Path at start with full confidence.
func NewPath(start *core.GraphInterface) *Path {
	return &Path{
		vertices:   []*core.GraphInterface{start},
		data:       &PathData{},
		confidence: 1.0,
	}
}

// Extend returns a new Path with next appended via link. The PathData
// is shared with p until either side mutates it.
func (p *Path) Extend(next *core.GraphInterface, link core.Link) *Path {
	verts := make([]*core.GraphInterface, len(p.vertices)+1)
	copy(verts, p.vertices)
	verts[len(p.vertices)] = next

	links := make([]core.Link, len(p.links)+1)
	copy(links, p.links)
	links[len(p.links)] = link

	p.data.shared = true
	return &Path{
		vertices:   verts,
		links:      links,
		data:       p.data,
		confidence: p.confidence,
	}
}

// pathData returns the shared data for reading.
func (p *Path) pathData() *PathData { return p.data }

// pathDataMut returns the data for writing, forking it first if it is
// still shared with another path. The unique fast path mutates in
// place.
func (p *Path) pathDataMut() *PathData {
	if p.data.shared {
		p.data = p.data.clone()
	}
	return p.data
}

// wake releases a hibernated path for further exploration. Its stacks
// and confidence are untouched: split completeness is a property of
// the end vertex it was checked at, and the path may yet extend to a
// different end where the obligations have to hold again.
func (p *Path) wake() {
	p.hibernated = false
	p.pathDataMut().notComplete = false
}

// completedView returns the result snapshot of a path whose split
// obligations are discharged at its current end: stacks emptied, the
// split-induced confidence halvings lifted. The live path keeps its
// state and may continue expanding.
func (p *Path) completedView() *Path {
	conf := p.confidence
	for i := p.openSplits(); i > 0; i-- {
		conf *= 2
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return &Path{
		vertices:   p.vertices,
		links:      p.links,
		data:       &PathData{},
		confidence: conf,
	}
}

// Len reports the number of vertices in the path.
func (p *Path) Len() int { return len(p.vertices) }

// At returns the vertex at position i (0 <= i < Len()).
func (p *Path) At(i int) *core.GraphInterface { return p.vertices[i] }

// First returns the path's starting vertex.
func (p *Path) First() *core.GraphInterface { return p.vertices[0] }

// Last returns the path's current vertex.
func (p *Path) Last() *core.GraphInterface { return p.vertices[len(p.vertices)-1] }

// Contains reports whether gif already appears in the path.
func (p *Path) Contains(gif *core.GraphInterface) bool {
	for _, v := range p.vertices {
		if v == gif {
			return true
		}
	}
	return false
}

// Index returns the position of gif in the path, or -1.
func (p *Path) Index(gif *core.GraphInterface) int {
	for i, v := range p.vertices {
		if v == gif {
			return i
		}
	}
	return -1
}

// Vertices returns a copy of the path's vertex sequence.
func (p *Path) Vertices() []*core.GraphInterface {
	out := make([]*core.GraphInterface, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Links returns a copy of the links traversed, in path order.
func (p *Path) Links() []core.Link {
	out := make([]core.Link, len(p.links))
	copy(out, p.links)
	return out
}

// lastEdge returns the most recently traversed edge, or ok=false for a
// single-vertex path.
func (p *Path) lastEdge() (from, to *core.GraphInterface, link core.Link, ok bool) {
	n := len(p.vertices)
	if n < 2 {
		return nil, nil, nil, false
	}
	return p.vertices[n-2], p.vertices[n-1], p.links[n-2], true
}

// lastTriEdge returns the three most recent vertices, or ok=false for a
// shorter path.
func (p *Path) lastTriEdge() (a, b, c *core.GraphInterface, ok bool) {
	n := len(p.vertices)
	if n < 3 {
		return nil, nil, nil, false
	}
	return p.vertices[n-3], p.vertices[n-2], p.vertices[n-1], true
}

// Confidence is 0.5 raised to the number of currently-open split
// obligations (each simultaneously-open split halves it), further
// attenuated by any recoverable conditional-link failures along the
// way. 1.0 means no outstanding obligations.
func (p *Path) Confidence() float64 { return p.confidence }

// Strong reports whether the path carries no outstanding obligations.
// Only strong paths write the BFS engine's strong-visited bitmap.
func (p *Path) Strong() bool { return p.confidence == 1.0 }

// NotComplete reports whether the path still has an undischarged split
// obligation. Paths with NotComplete set are never returned.
func (p *Path) NotComplete() bool { return p.data.notComplete }

// Filtered reports whether a discovery filter rejected the path,
// suppressing further expansion.
func (p *Path) Filtered() bool { return p.filtered }

// SplitStack returns a copy of the recorded split events (down-edges
// into multi-child parents and their matching joins). Empty once the
// path's obligations have been discharged.
func (p *Path) SplitStack() []PathStackElement {
	return append([]PathStackElement(nil), p.data.splitStack...)
}

// UnresolvedStack returns a copy of the pending hierarchy crossings.
func (p *Path) UnresolvedStack() []UnresolvedStackElement {
	return append([]UnresolvedStackElement(nil), p.data.unresolvedStack...)
}
