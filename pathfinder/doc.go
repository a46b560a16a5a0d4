// Package pathfinder enumerates the legal paths between two
// module-interface nodes of a core.Graph: a breadth-first search
// constrained by an ordered filter pipeline, with a split/join tracker
// that keeps per-branch confidence honest when connectivity has to
// hold across every child of a hierarchical parent at once.
//
// The search keeps two visitation bitmaps, keyed by each vertex's
// dense index in the originating graph:
//
//   - strong — vertices reached by a path with no outstanding
//     obligations; never revisited.
//   - weak — vertices reached by any surviving path; only prunes
//     cycles on a path's own branch.
//
// Path state is copy-on-write: extending a Path shares its PathData
// until a filter pushes or pops a stack entry, at which point the data
// forks. Paths that hit an uncovered split hibernate with the tracker
// and wake when the last sibling branch reports in.
//
// Entry point: PathFinder.FindPaths. Configure it with Option values
// (WithAbsoluteLimit, WithWeakLimit, WithNewWeakLimit, WithFilters,
// WithContext).
package pathfinder
