// File: hierarchy.go
// Role: classifies hierarchy edge crossings and folds them onto a
// path's stacks.
//
// The fold matches by (parent type, child type, name) with opposite
// direction, not by interface identity: descending into a child named
// "power" of one instance and climbing out of the same-typed "power"
// child of another instance cancels out. That is what lets a
// connection made at parent level carry the connectivity of each
// same-named child pair.
package pathfinder

import "github.com/atopile/graphcore/core"

// extractHierarchyElement classifies the edge (from, to) as an up- or
// down-link between two hierarchical interfaces and captures the
// types, name and direction of the crossing. ok is false for
// non-hierarchy edges and for child interfaces with no named parent
// link to take the name from.
func extractHierarchyElement(from, to *core.GraphInterface) (PathStackElement, bool) {
	up := core.IsUplink(from, to)
	if !up && !core.IsDownlink(from, to) {
		return PathStackElement{}, false
	}
	childGIF, parentGIF := from, to
	if !up {
		childGIF, parentGIF = to, from
	}
	link, err := childGIF.GetParentLink()
	if err != nil {
		return PathStackElement{}, false
	}
	parentNode, childNode := parentGIF.Node(), childGIF.Node()
	if parentNode == nil || childNode == nil {
		return PathStackElement{}, false
	}
	return PathStackElement{
		ParentType: parentNode.GranularType(),
		ChildType:  childNode.GranularType(),
		ParentGIF:  parentGIF,
		ChildGIF:   childGIF,
		Name:       link.Name(),
		Up:         up,
	}, true
}

// moduleInterfaceChildren returns the child-side interfaces under
// parentGIF whose nodes are module interfaces, in edge insertion
// order. These are the branches a split at parentGIF must cover.
func moduleInterfaceChildren(parentGIF *core.GraphInterface) []*core.GraphInterface {
	named, err := parentGIF.GetChildren()
	if err != nil {
		return nil
	}
	var out []*core.GraphInterface
	for _, nc := range named {
		if n := nc.GIF.Node(); n != nil && n.IsModuleInterface() {
			out = append(out, nc.GIF)
		}
	}
	return out
}

// foldStack applies one hierarchy crossing to p's stacks and
// confidence, returning how many new split obligations it opened.
//
// A crossing matching the top of the unresolved stack pops it. Popping
// an up-split frame means the path re-descended through a parent it
// had entered from below: the obligation was a pass-through, so the
// confidence penalty is lifted. Popping a down-split frame is the join
// event: it is recorded on the split stack, but the obligation stays
// open (and the confidence stays halved) until every sibling branch of
// that parent is covered.
//
// A crossing with no match is pushed. Crossings through a parent with
// more than one module-interface child open a split obligation and
// halve the confidence; a down-split is additionally recorded on the
// split stack immediately.
func (s *search) foldStack(p *Path, elem PathStackElement) (opened int) {
	stack := p.pathData().unresolvedStack
	if n := len(stack); n > 0 && stack[n-1].Elem.matches(elem) {
		top := stack[n-1]
		d := p.pathDataMut()
		d.unresolvedStack = d.unresolvedStack[:len(d.unresolvedStack)-1]
		if top.Split {
			if top.Elem.Up {
				p.confidence *= 2
			} else {
				d.splitStack = append(d.splitStack, elem)
			}
		}
		return 0
	}

	split := len(moduleInterfaceChildren(elem.ParentGIF)) > 1
	d := p.pathDataMut()
	d.unresolvedStack = append(d.unresolvedStack, UnresolvedStackElement{Elem: elem, Split: split})
	if !split {
		return 0
	}
	p.confidence *= 0.5
	if !elem.Up {
		d.splitStack = append(d.splitStack, elem)
	}
	return 1
}

// openSplits counts the path's undischarged split obligations:
// down-splits recorded on the split stack plus up-splits still pending
// on the unresolved stack. Confidence is 0.5 to this power (before any
// conditional-link attenuation).
func (p *Path) openSplits() int {
	n := 0
	for _, e := range p.pathData().splitStack {
		if !e.Up {
			n++
		}
	}
	for _, e := range p.pathData().unresolvedStack {
		if e.Split && e.Elem.Up {
			n++
		}
	}
	return n
}
