package core

import "errors"

// Sentinel errors for the arena graph store. Every INTERNAL outcome that
// originates below the driver surfaces as one of these, wrapped with
// fmt.Errorf("core: %w", ...) at the call site that detected it.
var (
	// ErrCapacity indicates the preallocated arc or stack capacity is
	// insufficient for the requested operation.
	ErrCapacity = errors.New("core: insufficient preallocated capacity")

	// ErrVertexRange indicates a vertex id outside [0, 2N) was used.
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrNotSorted indicates an operation that requires DFI-sorted vertices
	// (index(i) = i) was invoked before sorting occurred.
	ErrNotSorted = errors.New("core: graph is not sorted by DFI")

	// ErrCorruptArc indicates a twin-pair or adjacency-list invariant was
	// violated (I1/I2), detected defensively at a boundary.
	ErrCorruptArc = errors.New("core: corrupt arc record")

	// ErrInvalidSize indicates InitGraphCapacity (or NewGraph) was called
	// with N <= 0.
	ErrInvalidSize = errors.New("core: invalid vertex count")
)
