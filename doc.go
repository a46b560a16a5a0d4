// Package graphcore is the native core of an electronics-design framework:
// a typed, hierarchical graph plus a constrained path-finding engine that
// answers "is port A reachable from port B, and through which legal
// compositions of parent/child/connection links?"
//
// The module has no symbols of its own — it is organized under two
// subpackages:
//
//	core/       — Graph store, typed GraphInterface vertices, typed Link
//	              edges, and the hierarchical Node abstraction layered
//	              over them.
//	pathfinder/ — BFS-based path enumeration, the copy-on-write Path/
//	              PathData state, the filter pipeline, and the
//	              hierarchy split/join tracker.
//
// Scope is deliberately narrow: no persistence, no concurrent mutation, no
// incremental maintenance under edit, and no global numeric optimization —
// only enumeration of paths satisfying a declared filter pipeline. See
// core.Graph and pathfinder.PathFinder for the two entry points.
//
//	go get github.com/atopile/graphcore/core
//	go get github.com/atopile/graphcore/pathfinder
package graphcore
