package reveler

import "bytes"

// Verifier verifies commitment records.
// It is stateless and takes no secret inputs: verification only proves
// that the digest is consistent with the point, not that the point was
// honestly derived from any particular key, message and randomness.
type Verifier struct {
	Parameters Parameters
}

// NewVerifier creates a new Verifier.
func NewVerifier(params Parameters) *Verifier {
	return &Verifier{
		Parameters: params,
	}
}

// Verify recomputes the digest of record.Point and checks that it
// matches record.Digest.
func (v *Verifier) Verify(record CommitmentRecord) bool {
	if len(record.Point) != v.Parameters.degree {
		return false
	}

	return bytes.Equal(hashPoint(v.Parameters, record.Point), record.Digest)
}
