// File: errors.go
// Role: sentinel errors for the core package (graph store, graph
// interfaces, links, and nodes).
//
// Error policy:
//   - Only sentinel package-level variables are exposed.
//   - Callers branch on semantics with errors.Is, never string comparison.
//   - Structural programming errors (unbound link, reused link, invalidated
//     graph) are fatal and always returned, never panicked, so a caller
//     embedding this core can decide how to surface them.
package core

import "errors"

var (
	// ErrVertexNotFound indicates an operation referenced a vertex that is
	// not (or no longer) a member of the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a link that is not
	// wired into the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrForeignVertex indicates add_edge was asked to connect two
	// interfaces neither of which belongs to the receiving graph.
	ErrForeignVertex = errors.New("core: neither endpoint belongs to this graph")

	// ErrGraphInvalidated indicates an operation was attempted on a graph
	// that was folded away by a prior merge.
	ErrGraphInvalidated = errors.New("core: graph invalidated")

	// ErrLinkAlreadyBound indicates SetConnections was called a second time
	// on the same Link.
	ErrLinkAlreadyBound = errors.New("core: link already setup")

	// ErrLinkNotSetup indicates a Link accessor was used before the link
	// was wired to its endpoints.
	ErrLinkNotSetup = errors.New("core: link not setup")

	// ErrLinkFiltered indicates a conditional link rejected its own
	// endpoints at construction time.
	ErrLinkFiltered = errors.New("core: link filtered")

	// ErrInvalidHierarchy indicates a Parent/NamedParent link was given two
	// endpoints that are not a hierarchical parent/child pair (same
	// parent-flag, or not Hierarchical at all).
	ErrInvalidHierarchy = errors.New("core: invalid parent-child relationship")

	// ErrInvalidPointer indicates a Pointer/Sibling link was given two
	// endpoints neither of which is a Self interface.
	ErrInvalidPointer = errors.New("core: pointer link requires a Self endpoint")

	// ErrInvalidSibling indicates a Sibling link was given endpoints that
	// do not belong to the same owning node.
	ErrInvalidSibling = errors.New("core: sibling link requires both endpoints on the same node")

	// ErrEmptyChildName indicates NamedParent was constructed with an empty
	// child name.
	ErrEmptyChildName = errors.New("core: named parent link requires a non-empty name")

	// ErrWrongKind indicates a variant-specific operation (e.g. Children on
	// a non-Hierarchical interface) was invoked on the wrong GIFKind.
	ErrWrongKind = errors.New("core: operation not valid for this interface kind")

	// ErrUnboundReference indicates a Reference interface has no Pointer
	// edge to resolve.
	ErrUnboundReference = errors.New("core: reference is not bound")

	// ErrNodeNoParent indicates GetParentForce was called on a root node.
	ErrNodeNoParent = errors.New("core: node has no parent")

	// ErrNodeHasParent indicates AddChild was asked to attach a node that
	// is already bound under a parent.
	ErrNodeHasParent = errors.New("core: node already has a parent")
)
