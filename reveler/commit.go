package reveler

import (
	"runtime"
	"sync"
)

// Commiter computes commitments under a fixed CommitKey.
type Commiter struct {
	Parameters Parameters
	CommitKey  CommitKey

	convolver *Convolver
}

// NewCommiter creates a new Commiter.
func NewCommiter(params Parameters, ck CommitKey) *Commiter {
	return &Commiter{
		Parameters: params,
		CommitKey:  ck,

		convolver: NewConvolver(params),
	}
}

// ShallowCopy creates a shallow copy of Commiter that is thread-safe.
func (c *Commiter) ShallowCopy() *Commiter {
	return &Commiter{
		Parameters: c.Parameters,
		CommitKey:  c.CommitKey,

		convolver: c.convolver.ShallowCopy(),
	}
}

// workerCount returns the number of workers used by Commit.
func (c *Commiter) workerCount() int {
	if c.Parameters.workerCount > 0 {
		return c.Parameters.workerCount
	}

	if c.Parameters.degree > 1000 {
		return min(2*runtime.NumCPU(), 16)
	}
	return min(runtime.NumCPU(), 8)
}

// checkDimensions checks that the commit key, message and randomness
// all have length Degree.
func (c *Commiter) checkDimensions(m, r Vector) error {
	N := c.Parameters.degree

	if len(c.CommitKey.A) != N {
		return DimensionMismatchError{Name: "commit key A", Got: len(c.CommitKey.A), Want: N}
	}
	if len(c.CommitKey.B) != N {
		return DimensionMismatchError{Name: "commit key B", Got: len(c.CommitKey.B), Want: N}
	}
	for i := 0; i < N; i++ {
		if len(c.CommitKey.A[i]) != N {
			return DimensionMismatchError{Name: "commit key A row", Got: len(c.CommitKey.A[i]), Want: N}
		}
		if len(c.CommitKey.B[i]) != N {
			return DimensionMismatchError{Name: "commit key B row", Got: len(c.CommitKey.B[i]), Want: N}
		}
	}
	if len(m) != N {
		return DimensionMismatchError{Name: "message", Got: len(m), Want: N}
	}
	if len(r) != N {
		return DimensionMismatchError{Name: "randomness", Got: len(r), Want: N}
	}

	return nil
}

// Commit commits the message m using randomness r.
//
// Rows are partitioned into contiguous disjoint ranges, one per worker;
// workers are spawned fresh per call and joined before return. Each worker
// owns its output range exclusively, so the point is assembled by
// concatenation with no shared mutable state.
//
// Fails with DimensionMismatchError if the commit key, m and r do not all
// have length Degree, and with ComputeError if any worker fails.
func (c *Commiter) Commit(m, r Vector) (CommitmentRecord, error) {
	if err := c.checkDimensions(m, r); err != nil {
		return CommitmentRecord{}, err
	}

	N := c.Parameters.degree
	Q := c.Parameters.modulus

	workerCount := c.workerCount()
	chunkSize := (N + workerCount - 1) / workerCount

	chunks := make([]Vector, workerCount)
	errs := make([]error, workerCount)

	var wg sync.WaitGroup
	wg.Add(workerCount)

	for w := 0; w < workerCount; w++ {
		go func(w int) {
			defer wg.Done()
			defer func() {
				if rec := recover(); rec != nil {
					errs[w] = ComputeError{Worker: w, Cause: rec}
				}
			}()

			start := w * chunkSize
			end := min(start+chunkSize, N)
			if start >= end {
				chunks[w] = Vector{}
				return
			}

			convolver := c.convolver.ShallowCopy()
			mRes := NewVector(c.Parameters)
			rRes := NewVector(c.Parameters)

			chunk := make(Vector, end-start)
			for i := start; i < end; i++ {
				convolver.ConvolveAssign(c.CommitKey.A[i], m, mRes)
				convolver.ConvolveAssign(c.CommitKey.B[i], r, rRes)

				// Each row reduces to the modular sum over all
				// convolution outputs, one scalar per row.
				acc := uint64(0)
				for k := 0; k < N; k++ {
					acc = (acc + mRes[k] + rRes[k]) % Q
				}
				chunk[i-start] = acc
			}
			chunks[w] = chunk
		}(w)
	}

	wg.Wait()

	for w := 0; w < workerCount; w++ {
		if errs[w] != nil {
			return CommitmentRecord{}, errs[w]
		}
	}

	point := make(Vector, 0, N)
	for w := 0; w < workerCount; w++ {
		point = append(point, chunks[w]...)
	}

	return CommitmentRecord{
		Point:  point,
		Digest: hashPoint(c.Parameters, point),
	}, nil
}
