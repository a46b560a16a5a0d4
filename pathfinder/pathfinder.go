// File: pathfinder.go
// Role: PathFinder, the package's entry point.
package pathfinder

import "github.com/atopile/graphcore/core"

// PathFinder runs constrained breadth-first searches between
// module-interface nodes of a core.Graph. The zero value is ready to
// use; every FindPaths call carries its own state.
type PathFinder struct{}

// New constructs a PathFinder.
func New() *PathFinder { return &PathFinder{} }

// Result is what FindPaths returns: the surviving complete paths and
// the pipeline counters. Counters are populated even when the query
// fails or finds nothing, so callers can always attribute cost.
type Result struct {
	Paths    []*Path
	Counters []Counter
}

// FindPaths enumerates the legal paths from src to the given
// destination nodes, rooted at src's Self interface. The first
// surviving complete path per destination is kept, and the search
// stops early once every destination has one. Both src and every
// destination must be module-interface nodes. An empty destination set
// yields an empty result.
func (pf *PathFinder) FindPaths(src *core.Node, dsts []*core.Node, opts ...Option) (*Result, error) {
	limits := DefaultLimits()
	for _, opt := range opts {
		opt(&limits)
	}
	if limits.err != nil {
		return &Result{Counters: zeroCounters()}, limits.err
	}
	if src == nil || !src.IsModuleInterface() {
		return &Result{Counters: zeroCounters()}, ErrSrcNotModuleInterface
	}
	dstSet := make(map[*core.Node]struct{}, len(dsts))
	for _, d := range dsts {
		if d == nil || !d.IsModuleInterface() {
			return &Result{Counters: zeroCounters()}, ErrDstNotModuleInterface
		}
		dstSet[d] = struct{}{}
	}

	s := newSearch(src.Self().Graph(), limits)
	if len(dstSet) == 0 {
		return &Result{Counters: s.counters()}, nil
	}

	var paths []*Path
	remaining := len(dstSet)
	s.bfsVisit(src.Self(), func(p *Path) {
		if !s.total.exec(p, func() bool { return s.runFilters(p) }) {
			return
		}
		n := p.Last().Node()
		if _, wanted := dstSet[n]; !wanted {
			return
		}
		paths = append(paths, p.completedView())
		delete(dstSet, n)
		remaining--
		if remaining == 0 {
			p.stop = true
		}
	})

	out := make([]*Path, 0, len(paths))
	for _, p := range paths {
		if !p.NotComplete() {
			out = append(out, p)
		}
	}
	res := &Result{Paths: out, Counters: s.counters()}
	if limits.Ctx.Err() != nil {
		return res, ErrCanceled
	}
	return res, nil
}

// zeroCounters builds the zeroed counter set reported when a query
// fails before its search even starts; counters are part of every
// result, successful or not.
func zeroCounters() []Counter {
	s := &search{filters: defaultFilters(), total: Counter{Name: "total"}}
	return s.counters()
}
