// File: filter.go
// Role: the ordered filter pipeline every candidate path runs through
// on every extension.
//
// The pipeline runs on every visit. A stage returning false stops the
// pipeline, so later stages do not run: the path is not collected as a result, and if the stage is
// flagged Discovery it is additionally marked filtered, which stops
// the BFS from expanding it any further. Cheap structural rejections
// come first, the split/join bookkeeping last.
package pathfinder

import "github.com/atopile/graphcore/core"

// Filter is one named, instrumented stage of the pipeline.
type Filter struct {
	Name      string
	Discovery bool
	Counter   Counter

	run  func(s *search, p *Path) bool
	hide bool
}

// exec runs the stage under its counter and applies the discovery
// contract.
func (f *Filter) exec(s *search, p *Path) bool {
	ok := f.Counter.exec(p, func() bool { return f.run(s, p) })
	if !ok && f.Discovery {
		p.filtered = true
	}
	return ok
}

// defaultFilters builds the pipeline in its canonical order. The
// hidden count stage feeds the search's path counter and enforces the
// absolute limit; it never rejects.
func defaultFilters() []*Filter {
	return []*Filter{
		{Name: "count", Discovery: true, hide: true, run: (*search).filterCount},
		{Name: "node type", Discovery: true, run: (*search).filterNodeType},
		{Name: "gif type", Discovery: true, run: (*search).filterGIFType},
		{Name: "dead end split", Discovery: true, run: (*search).filterDeadEndSplit},
		{Name: "conditional link", Discovery: true, run: (*search).filterConditionalLink},
		{Name: "build stack", Discovery: false, run: (*search).filterBuildStack},
		{Name: "end in self gif", Discovery: false, run: (*search).filterEndInSelfGIF},
		{Name: "same end type", Discovery: false, run: (*search).filterSameEndType},
		{Name: "stack", Discovery: false, run: (*search).filterStackResolved},
		{Name: "valid split branch", Discovery: false, run: (*search).filterValidSplitBranch},
	}
}

// filterCount tallies every path presented to the pipeline and stops
// the whole search once the absolute path budget is spent.
func (s *search) filterCount(p *Path) bool {
	s.pathCnt++
	if s.pathCnt > s.limits.Absolute {
		p.stop = true
	}
	return true
}

// filterNodeType admits only paths whose current vertex belongs to a
// module-interface node. Everything else is off-limits to the search.
func (s *search) filterNodeType(p *Path) bool {
	n := p.Last().Node()
	return n != nil && n.IsModuleInterface()
}

// filterGIFType admits only the interface kinds a path may rest on
// mid-traversal.
func (s *search) filterGIFType(p *Path) bool {
	switch p.Last().Kind() {
	case core.KindSelf, core.KindHierarchical, core.KindModuleConnection:
		return true
	default:
		return false
	}
}

// filterDeadEndSplit rejects the child -> parent -> child pattern in
// the last three vertices: a path that climbs out of one child and
// straight down into a sibling is re-entering territory the sibling's
// own branch already owns.
func (s *search) filterDeadEndSplit(p *Path) bool {
	a, b, c, ok := p.lastTriEdge()
	if !ok {
		return true
	}
	if a.Kind() != core.KindHierarchical || b.Kind() != core.KindHierarchical ||
		c.Kind() != core.KindHierarchical {
		return true
	}
	if !a.IsParentGIF() && b.IsParentGIF() && !c.IsParentGIF() {
		return false
	}
	return true
}

// filterConditionalLink evaluates conditional-link predicates. The
// frontier edge is always checked; earlier conditionals that asked to
// be re-checked on every extension (FirstOnly false) are evaluated
// again against the grown path, where only an unrecoverable verdict
// matters — attenuation is applied once, at the frontier.
func (s *search) filterConditionalLink(p *Path) bool {
	_, _, link, ok := p.lastEdge()
	if !ok {
		return true
	}
	if cl, isCond := link.(core.ConditionalLink); isCond {
		switch cl.Filter()(p) {
		case core.FailUnrecoverable:
			return false
		case core.FailRecoverable:
			p.confidence *= 0.5
		}
	}
	for i := 0; i < len(p.links)-1; i++ {
		cl, isCond := p.links[i].(core.ConditionalLink)
		if !isCond || cl.FirstOnly() {
			continue
		}
		if cl.Filter()(p) == core.FailUnrecoverable {
			return false
		}
	}
	return true
}

// filterBuildStack folds the newest hierarchy crossing onto the path's
// stacks and applies the weak-path exploration bounds: past the
// no-new-weak budget no fold may open another split, and past the
// no-weak budget paths already carrying splits are dropped.
func (s *search) filterBuildStack(p *Path) bool {
	from, to, _, ok := p.lastEdge()
	if !ok {
		return true
	}
	if elem, isHier := extractHierarchyElement(from, to); isHier {
		opened := s.foldStack(p, elem)
		if opened > 0 && s.pathCnt > s.limits.NoNewWeak {
			p.filtered = true
			return false
		}
	}
	if s.pathCnt > s.limits.NoWeak && p.openSplits() > 0 {
		p.filtered = true
		return false
	}
	return true
}

// filterEndInSelfGIF requires a finished path to rest on a Self
// interface, the only legal terminal.
func (s *search) filterEndInSelfGIF(p *Path) bool {
	return p.Last().Kind() == core.KindSelf
}

// filterSameEndType requires the start and end nodes to share a
// granular type. The Self endpoints' own types are compared;
// references are not followed.
func (s *search) filterSameEndType(p *Path) bool {
	first, last := p.First().Node(), p.Last().Node()
	return first != nil && last != nil && first.GranularType() == last.GranularType()
}

// filterStackResolved requires the unresolved stack to hold nothing
// but dischargeable obligations: every leftover crossing must point at
// a parent that still has module-interface children for sibling
// branches to cover. A crossing the tracker could never settle makes
// the path structurally unbalanced for good.
func (s *search) filterStackResolved(p *Path) bool {
	for _, e := range p.pathData().unresolvedStack {
		if len(moduleInterfaceChildren(e.Elem.ParentGIF)) == 0 {
			return false
		}
	}
	return true
}

// filterValidSplitBranch settles the path's split obligations against
// the shared tracker. Each obligation registers this path's branch at
// its end vertex; if any branch of any obligation is still uncovered
// there, the path hibernates. The arrival that covers the last branch
// passes and wakes every hibernated suffix path recorded at that end.
// Completeness is settled per end vertex — the live path's own stacks
// and confidence are left alone so it can keep expanding.
func (s *search) filterValidSplitBranch(p *Path) bool {
	obs := obligationsOf(p)
	if len(obs) == 0 {
		return true
	}
	end := p.Last()
	for _, ob := range obs {
		s.splits.open(ob.ParentGIF).record(end, ob.ChildGIF, p)
	}
	if !s.allComplete(obs, end) {
		p.pathDataMut().notComplete = true
		p.hibernated = true
		for _, ob := range obs {
			s.splits.open(ob.ParentGIF).park(ob.ChildGIF, p)
		}
		// keep converging branches moving: give one hibernated sibling
		// its single waking attempt
		for _, ob := range obs {
			if q := s.splits.open(ob.ParentGIF).popParked(p); q != nil {
				q.hibernated = false
				q.wokenPartial = true
				s.woken = append(s.woken, q)
				break
			}
		}
		return false
	}

	released := make(map[*Path]struct{})
	var order []*Path
	for _, ob := range obs {
		for _, q := range s.splits.open(ob.ParentGIF).release(end) {
			if _, seen := released[q]; seen {
				continue
			}
			released[q] = struct{}{}
			order = append(order, q)
		}
	}
	for _, q := range order {
		if q == p || !q.hibernated {
			continue
		}
		if s.allComplete(obligationsOf(q), q.Last()) {
			q.wake()
			s.woken = append(s.woken, q)
		}
	}
	return true
}

// obligationsOf lists the path's undischarged split obligations,
// topmost first: every leftover crossing still on the unresolved
// stack, plus every recorded down-split. A down-split still on the
// unresolved stack appears in both places and is reported once.
func obligationsOf(p *Path) []PathStackElement {
	d := p.pathData()
	var obs []PathStackElement
	seen := make(map[PathStackElement]struct{})
	add := func(e PathStackElement) {
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		obs = append(obs, e)
	}
	for i := len(d.unresolvedStack) - 1; i >= 0; i-- {
		add(d.unresolvedStack[i].Elem)
	}
	for i := len(d.splitStack) - 1; i >= 0; i-- {
		if e := d.splitStack[i]; !e.Up {
			add(e)
		}
	}
	return obs
}

func (s *search) allComplete(obs []PathStackElement, end *core.GraphInterface) bool {
	for _, ob := range obs {
		if !s.splits.open(ob.ParentGIF).completeAt(end) {
			return false
		}
	}
	return true
}
