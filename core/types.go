// Package core defines the hierarchical graph's central types: the Graph
// store, the typed GraphInterface vertex, the typed Link edge, and the
// hierarchical Node that owns a triple of interfaces.
//
// Layout mirrors the file split of a larger graph core: types.go declares
// the shared vocabulary, graph.go the store, gif.go the vertex, link.go the
// edge variants, node.go the hierarchical entity.
//
// Concurrency: the store is single-threaded and synchronous by design — no
// internal locking. Callers must not interleave mutation with an in-flight
// pathfinder.FindPaths call; see the pathfinder package for the BFS engine
// that does the heavy lifting on top of this store.
package core

// GIFKind tags the variant of a GraphInterface (vertex).
type GIFKind uint8

const (
	// KindSelf identifies a node's single Self interface — the vertex BFS
	// paths must terminate on.
	KindSelf GIFKind = iota
	// KindHierarchical identifies a node's parent-side ("children", when
	// IsParentGIF is true) or child-side ("parent", when false) interface.
	KindHierarchical
	// KindReference identifies an interface that points at another node's
	// Self interface via a Pointer link.
	KindReference
	// KindModuleConnection identifies a generic connection-only interface,
	// carrying no hierarchy or reference semantics of its own.
	KindModuleConnection
)

// String renders the kind for debug output and test failure messages.
func (k GIFKind) String() string {
	switch k {
	case KindSelf:
		return "Self"
	case KindHierarchical:
		return "Hierarchical"
	case KindReference:
		return "Reference"
	case KindModuleConnection:
		return "ModuleConnection"
	default:
		return "Unknown"
	}
}

// LinkKind tags the variant of a Link (edge).
type LinkKind uint8

const (
	// KindDirect is an unconditional edge between two interfaces.
	KindDirect LinkKind = iota
	// KindParent requires both endpoints be Hierarchical with opposite
	// parent-flags.
	KindParent
	// KindNamedParent is KindParent plus a non-empty child name.
	KindNamedParent
	// KindPointer requires one endpoint be a Self interface.
	KindPointer
	// KindSibling is a Pointer restricted to a node's own Self interface.
	KindSibling
	// KindDirectConditional gates traversal on a predicate over the path.
	KindDirectConditional
	// KindDirectShallow rejects traversal when the originating node's
	// granular type is in a configured exclusion list.
	KindDirectShallow
	// KindDirectDerived synthesizes its predicate from another path's
	// conditional links.
	KindDirectDerived
)

// String renders the kind for debug output and test failure messages.
func (k LinkKind) String() string {
	switch k {
	case KindDirect:
		return "Direct"
	case KindParent:
		return "Parent"
	case KindNamedParent:
		return "NamedParent"
	case KindPointer:
		return "Pointer"
	case KindSibling:
		return "Sibling"
	case KindDirectConditional:
		return "DirectConditional"
	case KindDirectShallow:
		return "DirectShallow"
	case KindDirectDerived:
		return "DirectDerived"
	default:
		return "Unknown"
	}
}

// FilterResult is the outcome of evaluating a conditional link's predicate.
type FilterResult uint8

const (
	// Pass admits the path through the conditional link unchanged.
	Pass FilterResult = iota
	// FailRecoverable keeps the path but attenuates its confidence.
	FailRecoverable
	// FailUnrecoverable drops the path outright.
	FailUnrecoverable
)

// PathView is the minimal read-only view of an in-progress BFS path that a
// ConditionalFilter needs. core never imports pathfinder — pathfinder.Path
// implements this interface, so conditional links can inspect a path
// without either package depending on the other's private representation.
type PathView interface {
	// Len reports the number of vertices in the path.
	Len() int
	// At returns the vertex at position i (0 <= i < Len()).
	At(i int) *GraphInterface
	// First returns the path's starting vertex.
	First() *GraphInterface
	// Last returns the path's current (most recently extended) vertex.
	Last() *GraphInterface
	// Contains reports whether gif already appears in the path.
	Contains(gif *GraphInterface) bool
}

// ConditionalFilter is a predicate over a PathView, the "uniform predicate
// over a path" abstraction a conditional Link is built from.
type ConditionalFilter func(PathView) FilterResult

// ConditionalLink is implemented by every Link variant that gates
// traversal on a ConditionalFilter: DirectConditional, DirectShallow and
// DirectDerived.
type ConditionalLink interface {
	Link
	// Filter returns the predicate this link gates traversal on.
	Filter() ConditionalFilter
	// FirstOnly reports whether the predicate only needs checking at the
	// edge incident to the current BFS frontier (true), or at every
	// occurrence of this link on the path (false).
	FirstOnly() bool
}

// NodeType is the coarse classification of a Node. Only
// ModuleInterfaceType is meaningful to the core itself (it marks a legal
// BFS path endpoint); every other value is opaque and caller-defined.
type NodeType string

// ModuleInterfaceType marks a Node as a legal source/destination for
// pathfinder.FindPaths.
const ModuleInterfaceType NodeType = "ModuleInterface"

// BaseNodeType is the root of the node type hierarchy: every node is
// one. A GetChildren type filter containing it degenerates to no type
// filter at all.
const BaseNodeType NodeType = "Node"

// RootName is the name reported by Node.GetName for a node with no parent.
const RootName = "*"

// NodeHandle is an opaque, host-language attachment on a Node. The core
// never inspects it beyond TypeName, used purely for debug printing
// (Node.GetTypeName, Node.Repr); Node.GetChildren's type filter compares
// NodeType values and does not consult the handle. The core works
// correctly with a nil handle.
type NodeHandle interface {
	// TypeName reports the host-language class name of the attached
	// object, for debug printing (Node.GetTypeName, Node.Repr).
	TypeName() string
}
