package groupopt

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal classes described by the optimizer's error
// model: capacity exhaustion and internal structural invariant violations.
// Both abort the group (and, by the caller's choice, the whole compile);
// neither is expected to happen on well-formed input.
var (
	// ErrVertexArenaExhausted means more distinct projected vertices were
	// produced than the WithMaxVertices limit (default DefaultMaxVertices)
	// allows.
	ErrVertexArenaExhausted = errors.New("groupopt: vertex arena exhausted")

	// ErrEdgeArenaExhausted means more edges were produced than the
	// WithMaxEdges limit (default DefaultMaxEdges) allows.
	ErrEdgeArenaExhausted = errors.New("groupopt: edge arena exhausted")

	// ErrMislinkedEdge means an edge's incident-chain link does not point
	// back to the vertex that should own it; this indicates a bug in the
	// optimizer itself, never a property of the input.
	ErrMislinkedEdge = errors.New("groupopt: mislinked edge in incident chain")

	// ErrIslandCorrupt means an edge or vertex expected on the island's
	// linked list could not be found there.
	ErrIslandCorrupt = errors.New("groupopt: island list corrupted")
)

// FatalError wraps one of the sentinels above with the context that
// triggered it. A library must never terminate its host process, so
// OptimizeGroupList returns a *FatalError instead of panicking or calling
// os.Exit; callers that want the map-compiler behavior of aborting the
// whole run on a fatal condition can do so explicitly.
type FatalError struct {
	Err   error
	Group *OptimizeGroup
	Msg   string
}

func (e *FatalError) Error() string {
	if e.Msg == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Msg)
}

func (e *FatalError) Unwrap() error { return e.Err }

func fatalf(err error, group *OptimizeGroup, format string, args ...any) *FatalError {
	return &FatalError{Err: err, Group: group, Msg: fmt.Sprintf(format, args...)}
}
