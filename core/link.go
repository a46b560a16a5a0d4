// File: link.go
// Role: the typed Link (edge) variants connecting exactly two
// GraphInterface endpoints.
//
// Every variant implements SetConnections exactly once; a second call
// returns ErrLinkAlreadyBound. Parent and Pointer enforce endpoint-variant
// constraints at binding time. DirectConditional evaluates its predicate
// on the degenerate two-vertex path at binding time and returns
// ErrLinkFiltered if the result is not Pass.
package core

// Link is the common interface implemented by every edge variant.
type Link interface {
	// Kind reports the variant tag.
	Kind() LinkKind
	// Endpoints returns the two bound endpoints. Valid only once IsSetup.
	Endpoints() (from, to *GraphInterface)
	// IsSetup reports whether SetConnections has been called.
	IsSetup() bool
	// SetConnections binds the link to its two endpoints. May be called
	// exactly once; a second call returns ErrLinkAlreadyBound.
	SetConnections(from, to *GraphInterface) error
}

// base is embedded by every Link variant; it implements the bookkeeping
// common to all of them (endpoints, setup flag).
type base struct {
	from, to *GraphInterface
	setup    bool
}

func (b *base) Endpoints() (*GraphInterface, *GraphInterface) { return b.from, b.to }
func (b *base) IsSetup() bool                                 { return b.setup }

func (b *base) bind(from, to *GraphInterface) error {
	if b.setup {
		return ErrLinkAlreadyBound
	}
	b.from, b.to = from, to
	b.setup = true
	return nil
}

// --- Direct -----------------------------------------------------------

// Direct is an unconditional edge between two interfaces.
type Direct struct{ base }

// NewDirect constructs an unbound Direct link.
func NewDirect() *Direct { return &Direct{} }

func (l *Direct) Kind() LinkKind { return KindDirect }

func (l *Direct) SetConnections(from, to *GraphInterface) error {
	return l.bind(from, to)
}

// --- Parent / NamedParent ----------------------------------------------

// Parent requires both endpoints be Hierarchical with opposite
// parent-flags.
type Parent struct {
	base
	parent, child *GraphInterface
}

// NewParent constructs an unbound Parent link.
func NewParent() *Parent { return &Parent{} }

func (l *Parent) Kind() LinkKind { return KindParent }

func (l *Parent) SetConnections(from, to *GraphInterface) error {
	if err := l.bind(from, to); err != nil {
		return err
	}
	return l.resolveRoles(from, to)
}

func (l *Parent) resolveRoles(from, to *GraphInterface) error {
	if from.kind != KindHierarchical || to.kind != KindHierarchical {
		return ErrInvalidHierarchy
	}
	switch {
	case from.isParent && !to.isParent:
		l.parent, l.child = from, to
	case !from.isParent && to.isParent:
		l.parent, l.child = to, from
	default:
		return ErrInvalidHierarchy
	}
	return nil
}

// GetParent returns the parent-side endpoint. Errors with ErrLinkNotSetup
// before binding.
func (l *Parent) GetParent() (*GraphInterface, error) {
	if !l.setup {
		return nil, ErrLinkNotSetup
	}
	return l.parent, nil
}

// GetChild returns the child-side endpoint. Errors with ErrLinkNotSetup
// before binding.
func (l *Parent) GetChild() (*GraphInterface, error) {
	if !l.setup {
		return nil, ErrLinkNotSetup
	}
	return l.child, nil
}

// NamedParent is a Parent link carrying the child's name — the source of
// truth for Node.GetFullName.
type NamedParent struct {
	Parent
	name string
}

// NewNamedParent constructs an unbound NamedParent link. name must be
// non-empty; an empty name is rejected at SetConnections time with
// ErrEmptyChildName.
func NewNamedParent(name string) *NamedParent {
	return &NamedParent{name: name}
}

func (l *NamedParent) Kind() LinkKind { return KindNamedParent }

func (l *NamedParent) SetConnections(from, to *GraphInterface) error {
	if l.name == "" {
		return ErrEmptyChildName
	}
	return l.Parent.SetConnections(from, to)
}

// Name returns the child name this link carries.
func (l *NamedParent) Name() string { return l.name }

// --- Pointer / Sibling ---------------------------------------------------

// Pointer requires one endpoint be a Self interface.
type Pointer struct{ base }

// NewPointer constructs an unbound Pointer link.
func NewPointer() *Pointer { return &Pointer{} }

func (l *Pointer) Kind() LinkKind { return KindPointer }

func (l *Pointer) SetConnections(from, to *GraphInterface) error {
	if err := l.bind(from, to); err != nil {
		return err
	}
	if from.kind != KindSelf && to.kind != KindSelf {
		return ErrInvalidPointer
	}
	return nil
}

// Pointee returns the Self endpoint this pointer resolves to.
func (l *Pointer) Pointee() (*GraphInterface, error) {
	if !l.setup {
		return nil, ErrLinkNotSetup
	}
	if l.from.kind == KindSelf {
		return l.from, nil
	}
	return l.to, nil
}

// Sibling is a Pointer restricted to a node's own interfaces (self, parent,
// children wired to each other at Node construction time).
type Sibling struct{ Pointer }

// NewSibling constructs an unbound Sibling link.
func NewSibling() *Sibling { return &Sibling{} }

func (l *Sibling) Kind() LinkKind { return KindSibling }

func (l *Sibling) SetConnections(from, to *GraphInterface) error {
	if from.node == nil || from.node != to.node {
		return ErrInvalidSibling
	}
	return l.Pointer.SetConnections(from, to)
}

// --- DirectConditional ----------------------------------------------------

// DirectConditional gates traversal on a ConditionalFilter evaluated over
// the current path. firstOnly narrows the check to the edge incident to
// the current BFS frontier only.
type DirectConditional struct {
	base
	filter    ConditionalFilter
	firstOnly bool
}

// NewDirectConditional constructs an unbound DirectConditional link.
func NewDirectConditional(filter ConditionalFilter, firstOnly bool) *DirectConditional {
	return &DirectConditional{filter: filter, firstOnly: firstOnly}
}

func (l *DirectConditional) Kind() LinkKind            { return KindDirectConditional }
func (l *DirectConditional) Filter() ConditionalFilter { return l.filter }
func (l *DirectConditional) FirstOnly() bool           { return l.firstOnly }

func (l *DirectConditional) SetConnections(from, to *GraphInterface) error {
	if err := l.bind(from, to); err != nil {
		return err
	}
	if l.filter == nil {
		return nil
	}
	if res := l.filter(twoVertexPath{from, to}); res != Pass {
		return ErrLinkFiltered
	}
	return nil
}

// --- DirectShallow ----------------------------------------------------

// DirectShallow is a conditional link that fails when the originating
// node's granular type appears in a configured filter list.
type DirectShallow struct {
	base
	excluded map[string]struct{}
}

// NewDirectShallow constructs an unbound DirectShallow link whose filter
// rejects traversal from a node whose granular type is in excludedTypes.
func NewDirectShallow(excludedTypes []string) *DirectShallow {
	set := make(map[string]struct{}, len(excludedTypes))
	for _, t := range excludedTypes {
		set[t] = struct{}{}
	}
	return &DirectShallow{excluded: set}
}

func (l *DirectShallow) Kind() LinkKind  { return KindDirectShallow }
func (l *DirectShallow) FirstOnly() bool { return true }

func (l *DirectShallow) Filter() ConditionalFilter {
	return func(p PathView) FilterResult {
		src := p.First()
		if src == nil || src.node == nil {
			return Pass
		}
		if _, excluded := l.excluded[src.node.granularType]; excluded {
			return FailUnrecoverable
		}
		return Pass
	}
}

func (l *DirectShallow) SetConnections(from, to *GraphInterface) error {
	if err := l.bind(from, to); err != nil {
		return err
	}
	if res := l.Filter()(twoVertexPath{from, to}); res != Pass {
		return ErrLinkFiltered
	}
	return nil
}

// --- DirectDerived ------------------------------------------------------

// DirectDerived synthesizes its predicate from another path: the
// conjunction of every conditional filter found along that path, with
// firstOnly the AND of theirs.
type DirectDerived struct {
	base
	filter    ConditionalFilter
	firstOnly bool
}

// NewDirectDerived builds a DirectDerived link by walking derivedPath and
// collecting every ConditionalLink's filter along it.
func NewDirectDerived(derivedPath PathView) *DirectDerived {
	var filters []ConditionalFilter
	firstOnly := true
	for i := 0; i < derivedPath.Len()-1; i++ {
		link, ok := derivedPath.At(i).IsConnected(derivedPath.At(i + 1))
		if !ok {
			continue
		}
		cl, ok := link.(ConditionalLink)
		if !ok {
			continue
		}
		filters = append(filters, cl.Filter())
		firstOnly = firstOnly && cl.FirstOnly()
	}
	combined := func(p PathView) FilterResult {
		out := Pass
		for _, f := range filters {
			switch f(p) {
			case FailUnrecoverable:
				return FailUnrecoverable
			case FailRecoverable:
				out = FailRecoverable
			}
		}
		return out
	}
	return &DirectDerived{filter: combined, firstOnly: firstOnly}
}

func (l *DirectDerived) Kind() LinkKind            { return KindDirectDerived }
func (l *DirectDerived) Filter() ConditionalFilter { return l.filter }
func (l *DirectDerived) FirstOnly() bool           { return l.firstOnly }

func (l *DirectDerived) SetConnections(from, to *GraphInterface) error {
	return l.bind(from, to)
}

// twoVertexPath adapts a bare (from, to) pair to PathView so conditional
// links can evaluate their predicate at construction time, before any
// pathfinder.Path exists.
type twoVertexPath struct{ from, to *GraphInterface }

func (p twoVertexPath) Len() int { return 2 }
func (p twoVertexPath) At(i int) *GraphInterface {
	if i == 0 {
		return p.from
	}
	return p.to
}
func (p twoVertexPath) First() *GraphInterface { return p.from }
func (p twoVertexPath) Last() *GraphInterface  { return p.to }
func (p twoVertexPath) Contains(gif *GraphInterface) bool {
	return gif == p.from || gif == p.to
}
