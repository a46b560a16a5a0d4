// File: split.go
// Role: the split/join tracker shared by every candidate path of one
// search.
//
// A split obligation at a parent interface is discharged only when
// every module-interface child of that parent has at least one
// recorded path ending at the same vertex. Until then, arriving paths
// hibernate; the arrival that covers the last branch releases them
// all. Per-child arrival lists are FIFO and released branch by branch
// in child order, so within a branch the first path to arrive is the
// first woken when the split completes.
package pathfinder

import "github.com/atopile/graphcore/core"

// SplitState tracks one split point: the branches it must cover, the
// suffix paths recorded so far per end vertex and branch, and the
// per-branch FIFO of hibernated paths awaiting a wake.
type SplitState struct {
	parent   *core.GraphInterface
	children []*core.GraphInterface

	arrivals map[*core.GraphInterface]map[*core.GraphInterface][]*Path
	done     map[*core.GraphInterface]bool
	parked   map[*core.GraphInterface][]*Path
}

// SplitTracker owns every SplitState of an in-flight search, keyed by
// the parent interface where the split occurred.
type SplitTracker struct {
	states map[*core.GraphInterface]*SplitState
}

func newSplitTracker() *SplitTracker {
	return &SplitTracker{states: make(map[*core.GraphInterface]*SplitState)}
}

// open returns the split state at parent, creating it on first use
// with the parent's current module-interface child set.
func (t *SplitTracker) open(parent *core.GraphInterface) *SplitState {
	if st, ok := t.states[parent]; ok {
		return st
	}
	st := &SplitState{
		parent:   parent,
		children: moduleInterfaceChildren(parent),
		arrivals: make(map[*core.GraphInterface]map[*core.GraphInterface][]*Path),
		done:     make(map[*core.GraphInterface]bool),
		parked:   make(map[*core.GraphInterface][]*Path),
	}
	t.states[parent] = st
	return st
}

// record notes that p, ending at end, covers the branch through child.
func (st *SplitState) record(end, child *core.GraphInterface, p *Path) {
	m := st.arrivals[end]
	if m == nil {
		m = make(map[*core.GraphInterface][]*Path)
		st.arrivals[end] = m
	}
	for _, q := range m[child] {
		if q == p {
			return
		}
	}
	m[child] = append(m[child], p)
}

// completeAt reports whether every branch of the split has at least
// one recorded path ending at end.
func (st *SplitState) completeAt(end *core.GraphInterface) bool {
	if st.done[end] {
		return true
	}
	m := st.arrivals[end]
	for _, c := range st.children {
		if len(m[c]) == 0 {
			return false
		}
	}
	return true
}

// park queues a hibernating path on its branch's wait list.
func (st *SplitState) park(child *core.GraphInterface, p *Path) {
	for _, q := range st.parked[child] {
		if q == p {
			return
		}
	}
	st.parked[child] = append(st.parked[child], p)
}

// popParked returns the oldest parked path still hibernating that has
// not had its one waking attempt yet, scanning branches in child
// order. Returns nil if every candidate is spent.
func (st *SplitState) popParked(exclude *Path) *Path {
	for _, c := range st.children {
		for _, q := range st.parked[c] {
			if q == exclude || !q.hibernated || q.wokenPartial {
				continue
			}
			return q
		}
	}
	return nil
}

// release marks the split complete at end and returns every recorded
// suffix path there, branch by branch in child order, FIFO within a
// branch. Subsequent calls for the same end return nil.
func (st *SplitState) release(end *core.GraphInterface) []*Path {
	if st.done[end] {
		return nil
	}
	st.done[end] = true
	var out []*Path
	for _, c := range st.children {
		out = append(out, st.arrivals[end][c]...)
	}
	return out
}
