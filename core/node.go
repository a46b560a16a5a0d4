// File: node.go
// Role: Node, the hierarchical entity layered over three
// GraphInterfaces (self, parent, children), wired together at
// construction time the way the original C++ Node constructor does: via
// Sibling links between self and each of parent/children.
package core

import "sort"

// Node is one entity in the hierarchy: it owns a Self interface (the
// legal BFS path endpoint for paths between module interfaces), a
// child-side Hierarchical interface ("parent", for reaching upward) and
// a parent-side Hierarchical interface ("children", for reaching
// downward). A Node with type ModuleInterfaceType is the unit
// pathfinder.FindPaths operates between.
type Node struct {
	self, parent, children *GraphInterface

	nodeType     NodeType
	granularType string
	handle       NodeHandle
}

// NewNode constructs a standalone Node (not yet attached to any parent)
// of the given NodeType and granular type name, with an optional
// host-language handle. self, parent and children are wired to each
// other with Sibling links exactly as the original constructor does.
func NewNode(nodeType NodeType, granularType string, handle NodeHandle) *Node {
	n := &Node{
		self:         NewSelfGIF(),
		parent:       NewHierarchicalGIF(false),
		children:     NewHierarchicalGIF(true),
		nodeType:     nodeType,
		granularType: granularType,
		handle:       handle,
	}
	n.self.node = n
	n.parent.node = n
	n.children.node = n
	// self <-> parent/children are always reachable without crossing a
	// hierarchy edge, mirroring the original node.cpp wiring.
	_ = n.self.Connect(n.parent, NewSibling())
	_ = n.self.Connect(n.children, NewSibling())
	return n
}

// Self returns the node's Self interface.
func (n *Node) Self() *GraphInterface { return n.self }

// ParentGIF returns the node's child-side Hierarchical interface (used
// to reach this node's parent).
func (n *Node) ParentGIF() *GraphInterface { return n.parent }

// ChildrenGIF returns the node's parent-side Hierarchical interface
// (used to reach this node's children).
func (n *Node) ChildrenGIF() *GraphInterface { return n.children }

// Type returns the node's NodeType.
func (n *Node) Type() NodeType { return n.nodeType }

// IsModuleInterface reports whether this node is a legal path endpoint.
func (n *Node) IsModuleInterface() bool { return n.nodeType == ModuleInterfaceType }

// GranularType returns the node's granular type name, used by
// DirectShallow filters and GetTypeName.
func (n *Node) GranularType() string { return n.granularType }

// GetTypeName returns the host-language handle's TypeName if attached,
// otherwise the granular type name.
func (n *Node) GetTypeName() string {
	if n.handle != nil {
		return n.handle.TypeName()
	}
	return n.granularType
}

// AddChild attaches child under n with the given name, wiring a
// NamedParent link between n's children interface and child's parent
// interface. Returns ErrNodeHasParent if child is already attached
// somewhere, and propagates ErrEmptyChildName or ErrInvalidHierarchy
// from the link binding.
func (n *Node) AddChild(name string, child *Node) error {
	if _, err := child.parent.GetParentLink(); err == nil {
		return ErrNodeHasParent
	}
	return n.children.Connect(child.parent, NewNamedParent(name))
}

// DetachParent removes the NamedParent edge binding n under its
// parent, making n a root again. Returns ErrNodeNoParent if n already
// is one.
func (n *Node) DetachParent() error {
	return n.parent.DisconnectParent()
}

// GetParent returns this node's parent Node and the name the parent
// knows it by. ok is false for a root.
func (n *Node) GetParent() (parent *Node, name string, ok bool) {
	link, err := n.parent.GetParentLink()
	if err != nil {
		return nil, "", false
	}
	pgif, err := link.GetParent()
	if err != nil {
		return nil, "", false
	}
	return pgif.node, link.Name(), true
}

// GetParentForce returns this node's parent Node, or ErrNodeNoParent if
// n is a root.
func (n *Node) GetParentForce() (*Node, error) {
	parent, _, ok := n.GetParent()
	if !ok {
		return nil, ErrNodeNoParent
	}
	return parent, nil
}

// GetName returns the name this node's parent knows it by, or RootName
// if n has no parent.
func (n *Node) GetName() string {
	if _, name, ok := n.GetParent(); ok {
		return name
	}
	return RootName
}

// HierarchyEntry pairs a Node with the name its parent knows it by, used
// by GetHierarchy to report the root-to-node chain.
type HierarchyEntry struct {
	Node *Node
	Name string
}

// GetHierarchy returns the chain of HierarchyEntry from the root down to
// and including n.
func (n *Node) GetHierarchy() []HierarchyEntry {
	var chain []HierarchyEntry
	cur := n
	for {
		chain = append([]HierarchyEntry{{Node: cur, Name: cur.GetName()}}, chain...)
		p, _, ok := cur.GetParent()
		if !ok {
			return chain
		}
		cur = p
	}
}

// GetFullName returns the dotted path from the root to n. When
// withTypes is true, each segment is suffixed with "|<granular type>".
func (n *Node) GetFullName(withTypes bool) string {
	chain := n.GetHierarchy()
	out := ""
	for i, entry := range chain {
		if i > 0 {
			out += "."
		}
		seg := entry.Name
		if withTypes {
			seg += "|" + entry.Node.GranularType()
		}
		out += seg
	}
	return out
}

// Repr renders a debug string: full name and type name (see GetTypeName).
func (n *Node) Repr() string {
	return n.GetFullName(false) + " (" + n.GetTypeName() + ")"
}

// childrenDirect returns this node's immediate children, in the order
// their NamedParent edges were added.
func (n *Node) childrenDirect() []*Node {
	named, err := n.children.GetChildren()
	if err != nil {
		return nil
	}
	out := make([]*Node, 0, len(named))
	for _, nc := range named {
		if nc.GIF.node != nil {
			out = append(out, nc.GIF.node)
		}
	}
	return out
}

// childrenAll returns every descendant of n, direct and transitive, in
// pre-order.
func (n *Node) childrenAll() []*Node {
	var out []*Node
	for _, c := range n.childrenDirect() {
		out = append(out, c)
		out = append(out, c.childrenAll()...)
	}
	return out
}

// GetChildren returns n's children filtered by NodeType membership (nil
// or empty types means no type filter, as does any set containing
// BaseNodeType) and an optional extra predicate.
// directOnly restricts the walk to immediate children; otherwise every
// descendant is considered. includeRoot additionally considers n itself.
// When sortByName is true the result is ordered by full name, otherwise
// results come back in discovery order.
func (n *Node) GetChildren(directOnly bool, types []NodeType, includeRoot bool, filter func(*Node) bool, sortByName bool) []*Node {
	var candidates []*Node
	if includeRoot {
		candidates = append(candidates, n)
	}
	if directOnly {
		candidates = append(candidates, n.childrenDirect()...)
	} else {
		candidates = append(candidates, n.childrenAll()...)
	}

	typeSet := make(map[NodeType]struct{}, len(types))
	for _, t := range types {
		if t == BaseNodeType {
			// asking for the base type is asking for everything
			typeSet = nil
			break
		}
		typeSet[t] = struct{}{}
	}

	out := candidates[:0]
	for _, c := range candidates {
		if len(typeSet) > 0 {
			if _, ok := typeSet[c.nodeType]; !ok {
				continue
			}
		}
		if filter != nil && !filter(c) {
			continue
		}
		out = append(out, c)
	}

	if sortByName {
		sort.Slice(out, func(i, j int) bool {
			return out[i].GetFullName(false) < out[j].GetFullName(false)
		})
	}
	return out
}
