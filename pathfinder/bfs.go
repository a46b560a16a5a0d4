// File: bfs.go
// Role: the breadth-first walk driving one FindPaths call.
//
// Two visitation bitmaps are kept, sized to the graph's vertex count
// and keyed by the dense vertex index: a strong one written only by
// paths with no outstanding obligations, which prunes neighbors
// globally, and a weak one written by every surviving path, which only
// prunes cycles on a path's own branch.
package pathfinder

import "github.com/atopile/graphcore/core"

// search is the per-FindPaths state: limits, pipeline, bitmaps, queue,
// the shared split tracker and the path counter the limit heuristics
// read.
type search struct {
	graph   *core.Graph
	limits  Limits
	filters []*Filter
	total   Counter
	splits  *SplitTracker

	pathCnt int
	woken   []*Path

	strong  []bool
	weak    []bool
	queue   []*Path
	stopped bool
}

func newSearch(g *core.Graph, limits Limits) *search {
	filters := limits.Filters
	if filters == nil {
		filters = defaultFilters()
	}
	return &search{
		graph:   g,
		limits:  limits,
		filters: filters,
		total:   Counter{Name: "total"},
		splits:  newSplitTracker(),
		strong:  make([]bool, g.VertexCount()),
		weak:    make([]bool, g.VertexCount()),
	}
}

// runFilters pushes p through the pipeline, stopping at the first
// stage that rejects it.
func (s *search) runFilters(p *Path) bool {
	for _, f := range s.filters {
		if !f.exec(s, p) {
			return false
		}
	}
	return true
}

// counters snapshots every visible stage counter plus the pipeline
// total, in order.
func (s *search) counters() []Counter {
	out := make([]Counter, 0, len(s.filters)+1)
	for _, f := range s.filters {
		if f.hide {
			continue
		}
		c := f.Counter
		c.Name = f.Name
		out = append(out, c)
	}
	out = append(out, s.total)
	return out
}

func (s *search) markVisited(p *Path) {
	i, ok := s.graph.Index(p.Last())
	if !ok {
		return
	}
	s.weak[i] = true
	if p.Strong() {
		s.strong[i] = true
	}
}

// bfsVisit walks breadth-first from root, calling visitor on every
// candidate path, the single-vertex root path included. The visitor
// communicates back through the path's flags: stop clears the queue,
// hibernated parks the path with the split tracker, filtered stops its
// expansion. Paths the split tracker releases are re-queued as they
// wake.
func (s *search) bfsVisit(root *core.GraphInterface, visitor func(*Path)) {
	handle := func(p *Path) {
		visitor(p)
		if p.stop {
			s.queue = s.queue[:0]
			s.stopped = true
			return
		}
		for _, w := range s.woken {
			s.markVisited(w)
			s.queue = append(s.queue, w)
		}
		s.woken = s.woken[:0]
		if p.hibernated || p.filtered {
			return
		}
		s.markVisited(p)
		s.queue = append(s.queue, p)
	}

	handle(NewPath(root))

	for len(s.queue) > 0 {
		select {
		case <-s.limits.Ctx.Done():
			return
		default:
		}

		p := s.queue[0]
		s.queue = s.queue[1:]

		verts, links, err := s.graph.Neighbors(p.Last())
		if err != nil {
			continue
		}
		for i, next := range verts {
			idx, ok := s.graph.Index(next)
			if ok && s.strong[idx] {
				continue
			}
			if ok && s.weak[idx] && p.Contains(next) {
				continue
			}
			handle(p.Extend(next, links[i]))
			if s.stopped {
				return
			}
		}
	}
}
