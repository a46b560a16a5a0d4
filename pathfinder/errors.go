package pathfinder

import "errors"

var (
	// ErrSrcNotModuleInterface indicates FindPaths was given a source
	// node that is not a module interface.
	ErrSrcNotModuleInterface = errors.New("pathfinder: source is not a module interface")

	// ErrDstNotModuleInterface indicates FindPaths was given a
	// destination node that is not a module interface.
	ErrDstNotModuleInterface = errors.New("pathfinder: destination is not a module interface")

	// ErrOptionViolation indicates an Option was given an invalid value.
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")

	// ErrCanceled indicates the search's context was canceled before it
	// completed; the partial result still carries the counters.
	ErrCanceled = errors.New("pathfinder: search canceled")
)
