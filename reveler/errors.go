package reveler

import "fmt"

// DimensionMismatchError is returned by Commit when the commit key,
// message or randomness do not all have length Degree.
// It is reported before any work is partitioned.
type DimensionMismatchError struct {
	// Name is the offending input.
	Name string
	// Got is the observed length.
	Got int
	// Want is the expected length.
	Want int
}

// Error implements the error interface.
func (e DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: %s has length %d, want %d", e.Name, e.Got, e.Want)
}

// ComputeError is returned by Commit when a worker fails to produce its chunk.
// The whole commitment fails; no partial output is ever returned.
type ComputeError struct {
	// Worker is the index of the failed worker.
	Worker int
	// Cause is the recovered panic value.
	Cause any
}

// Error implements the error interface.
func (e ComputeError) Error() string {
	return fmt.Sprintf("commit worker %d failed: %v", e.Worker, e.Cause)
}
