// File: gif.go
// Role: GraphInterface, the typed vertex of the graph, and the
// variant-specific behavior layered on top of the four GIFKind values.
package core

import "github.com/google/uuid"

// GraphInterface is a typed vertex: one of a node's connection points.
// Every interface is born into its own singleton Graph (see the
// constructors below); connecting it to another interface via Connect
// merges the two graphs as a side effect of Graph.AddEdge.
type GraphInterface struct {
	id       uuid.UUID
	kind     GIFKind
	name     string
	isParent bool
	node     *Node
	graph    *Graph
}

func newGIF(kind GIFKind, name string) *GraphInterface {
	gif := &GraphInterface{id: uuid.New(), kind: kind, name: name}
	g := NewGraph()
	g.addVertex(gif)
	return gif
}

// NewSelfGIF constructs a fresh Self interface.
func NewSelfGIF() *GraphInterface { return newGIF(KindSelf, "self") }

// NewHierarchicalGIF constructs a fresh Hierarchical interface. isParent
// is true for the interface a node exposes to its children ("children"),
// false for the interface a node uses to reach upward ("parent").
func NewHierarchicalGIF(isParent bool) *GraphInterface {
	name := "parent"
	if isParent {
		name = "children"
	}
	gif := newGIF(KindHierarchical, name)
	gif.isParent = isParent
	return gif
}

// NewReferenceGIF constructs a fresh Reference interface.
func NewReferenceGIF(name string) *GraphInterface {
	return newGIF(KindReference, name)
}

// NewModuleConnectionGIF constructs a fresh ModuleConnection interface.
func NewModuleConnectionGIF(name string) *GraphInterface {
	return newGIF(KindModuleConnection, name)
}

// ID returns the interface's debug identity.
func (gif *GraphInterface) ID() uuid.UUID { return gif.id }

// Kind returns the interface's GIFKind.
func (gif *GraphInterface) Kind() GIFKind { return gif.kind }

// Name returns the interface's short (non-dotted) name.
func (gif *GraphInterface) Name() string { return gif.name }

// Node returns the Node this interface belongs to, or nil if it has not
// been attached to one yet (see node.go's construction wiring).
func (gif *GraphInterface) Node() *Node { return gif.node }

// Graph returns the graph this interface currently belongs to. Follow
// this rather than caching it across calls that might trigger a merge.
func (gif *GraphInterface) Graph() *Graph { return gif.graph }

// Connect wires link between gif and other, merging their graphs as
// needed. Returns ErrGraphInvalidated, or any error link.SetConnections
// returns (ErrLinkAlreadyBound, ErrInvalidHierarchy, ErrInvalidPointer,
// ErrEmptyChildName, ErrLinkFiltered).
func (gif *GraphInterface) Connect(other *GraphInterface, link Link) error {
	return gif.graph.AddEdge(gif, other, link)
}

// ConnectDirect is shorthand for Connect with a fresh, unconditional
// Direct link.
func (gif *GraphInterface) ConnectDirect(other *GraphInterface) error {
	return gif.Connect(other, NewDirect())
}

// IsConnected reports whether gif and other share a direct edge, and
// returns it. If more than one link connects the pair, the first added
// is returned.
func (gif *GraphInterface) IsConnected(other *GraphInterface) (Link, bool) {
	if gif.graph == nil {
		return nil, false
	}
	for _, e := range gif.graph.adj[gif] {
		if e.to == other {
			return e.link, true
		}
	}
	return nil, false
}

// Edges returns every link incident on gif, in insertion order.
func (gif *GraphInterface) Edges() []Link {
	if gif.graph == nil {
		return nil
	}
	entries := gif.graph.adj[gif]
	out := make([]Link, len(entries))
	for i, e := range entries {
		out[i] = e.link
	}
	return out
}

// FullName returns the dotted name of the owning node joined with this
// interface's short name, e.g. "*.power.self". When withTypes is
// true the result is annotated with the interface's concrete variant,
// e.g. "*.power.self|Self".
func (gif *GraphInterface) FullName(withTypes bool) string {
	out := gif.name
	if gif.node != nil {
		out = gif.node.GetFullName(false) + "." + gif.name
	}
	if withTypes {
		out += "|" + gif.kind.String()
	}
	return out
}

// --- Hierarchical-only behavior ---------------------------------------

// IsParentGIF reports whether this Hierarchical interface is the
// parent-side ("children") interface. Meaningless for other kinds.
func (gif *GraphInterface) IsParentGIF() bool { return gif.kind == KindHierarchical && gif.isParent }

// GetParentLink returns the NamedParent link incident on this
// child-side Hierarchical interface, i.e. the edge to this node's
// parent. Returns ErrWrongKind if gif is not a child-side Hierarchical
// interface, or ErrNodeNoParent if no such edge exists (gif is a root).
func (gif *GraphInterface) GetParentLink() (*NamedParent, error) {
	if gif.kind != KindHierarchical || gif.isParent {
		return nil, ErrWrongKind
	}
	for _, e := range gif.Edges() {
		if np, ok := e.(*NamedParent); ok {
			return np, nil
		}
	}
	return nil, ErrNodeNoParent
}

// GetParent returns the parent-side interface linked to gif. Same
// failure modes as GetParentLink.
func (gif *GraphInterface) GetParent() (*GraphInterface, error) {
	link, err := gif.GetParentLink()
	if err != nil {
		return nil, err
	}
	return link.GetParent()
}

// GetChildren returns the (name, interface) pairs reachable from this
// parent-side Hierarchical interface via NamedParent links, in edge
// insertion order. Returns ErrWrongKind if gif is not a parent-side
// Hierarchical interface.
func (gif *GraphInterface) GetChildren() ([]NamedChild, error) {
	if gif.kind != KindHierarchical || !gif.isParent {
		return nil, ErrWrongKind
	}
	var out []NamedChild
	for _, e := range gif.Edges() {
		np, ok := e.(*NamedParent)
		if !ok {
			continue
		}
		child, err := np.GetChild()
		if err != nil {
			continue
		}
		out = append(out, NamedChild{Name: np.Name(), GIF: child})
	}
	return out, nil
}

// NamedChild pairs a child-side Hierarchical interface with the name its
// NamedParent link carries.
type NamedChild struct {
	Name string
	GIF  *GraphInterface
}

// DisconnectParent removes the NamedParent edge incident on this
// child-side Hierarchical interface. Returns ErrWrongKind or
// ErrNodeNoParent under the same conditions as GetParentLink.
func (gif *GraphInterface) DisconnectParent() error {
	link, err := gif.GetParentLink()
	if err != nil {
		return err
	}
	return gif.graph.RemoveEdge(link)
}

// IsUplink reports whether an edge from a to b climbs the hierarchy:
// a is a child-side Hierarchical interface and b a parent-side one.
func IsUplink(a, b *GraphInterface) bool {
	return a.kind == KindHierarchical && b.kind == KindHierarchical &&
		!a.isParent && b.isParent
}

// IsDownlink reports whether an edge from a to b descends the
// hierarchy: a is a parent-side Hierarchical interface and b a
// child-side one.
func IsDownlink(a, b *GraphInterface) bool {
	return IsUplink(b, a)
}

// --- Reference-only behavior --------------------------------------------

// GetReferencedGIF resolves this Reference interface's Pointer link to
// the Self interface it points at. Returns ErrWrongKind if gif is not a
// Reference interface, or ErrUnboundReference if no Pointer link is
// wired yet.
func (gif *GraphInterface) GetReferencedGIF() (*GraphInterface, error) {
	if gif.kind != KindReference {
		return nil, ErrWrongKind
	}
	for _, e := range gif.Edges() {
		if ptr, ok := e.(*Pointer); ok {
			return ptr.Pointee()
		}
	}
	return nil, ErrUnboundReference
}

// GetReference resolves this Reference interface all the way to the
// owning Node of the Self interface it points at.
func (gif *GraphInterface) GetReference() (*Node, error) {
	self, err := gif.GetReferencedGIF()
	if err != nil {
		return nil, err
	}
	return self.node, nil
}
