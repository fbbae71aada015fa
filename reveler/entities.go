package reveler

import "bytes"

// Vector is a length-N vector with entries in [0, Q).
type Vector []uint64

// Matrix is a row-major N * N matrix with entries in [0, Q).
type Matrix []Vector

// NewVector creates a new Vector.
func NewVector(params Parameters) Vector {
	return make(Vector, params.degree)
}

// NewMatrix creates a new Matrix.
func NewMatrix(params Parameters) Matrix {
	M := make(Matrix, params.degree)
	for i := 0; i < params.degree; i++ {
		M[i] = make(Vector, params.degree)
	}
	return M
}

// CommitmentRecord is the public output of a commitment.
// It is created once by Commiter and never mutated.
type CommitmentRecord struct {
	// Point has length Degree, with one entry per commit key row.
	Point Vector
	// Digest is the iterated hash of the serialized Point.
	Digest []byte
}

// Equals checks if two CommitmentRecords are equal.
func (r CommitmentRecord) Equals(other CommitmentRecord) bool {
	if len(r.Point) != len(other.Point) {
		return false
	}
	for i := 0; i < len(r.Point); i++ {
		if r.Point[i] != other.Point[i] {
			return false
		}
	}

	return bytes.Equal(r.Digest, other.Digest)
}
