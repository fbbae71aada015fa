// Package reveler implements a binding commitment scheme over vectors modulo Q,
// computed with transform-domain circular convolution and iterated hashing.
package reveler

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// maxExactConv bounds Degree * (Modulus-1)^2, the largest possible
// convolution coefficient. Keeping it below 2^52 leaves one bit of
// headroom under the float64 mantissa, so transform-domain roundoff
// stays below 0.5 and rounding recovers the exact integer result.
// Larger parameters would fail silently, so Compile rejects them.
const maxExactConv = 1 << 52

// HashConstructor creates a fresh hash state with the given digest size in bytes.
type HashConstructor func(size int) (hash.Hash, error)

// ParametersLiteral is a structure for the commitment scheme parameters.
type ParametersLiteral struct {
	// Degree is the length of committed vectors and the row count of commit key matrices.
	// Denoted as N.
	Degree int
	// Modulus is the modulus of vector and matrix entries.
	// Denoted as Q.
	// It does not have to be prime.
	Modulus uint64

	// DigestSize is the byte length of commitment digests.
	DigestSize int
	// Hash optionally overrides the digest primitive.
	// If nil, BLAKE2b is used.
	Hash HashConstructor

	// WorkerCount fixes the number of workers used by Commit.
	// If zero, a heuristic based on the CPU count and Degree is used.
	WorkerCount int
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If there is any invalid parameter in the literal, it panics.
// Default parameters are guaranteed to be compiled without panics.
func (p ParametersLiteral) Compile() Parameters {
	switch {
	case p.Degree <= 0:
		panic("Degree must be positive")
	case p.Modulus <= 1:
		panic("Modulus must be larger than 1")
	case float64(p.Degree)*float64(p.Modulus-1)*float64(p.Modulus-1) >= maxExactConv:
		panic("Degree * (Modulus-1)^2 exceeds the exact convolution bound")
	case p.DigestSize <= 0:
		panic("DigestSize must be positive")
	case p.WorkerCount < 0:
		panic("WorkerCount must be non-negative")
	}

	hashNew := p.Hash
	if hashNew == nil {
		hashNew = func(size int) (hash.Hash, error) { return blake2b.New(size, nil) }
	}
	if _, err := hashNew(p.DigestSize); err != nil {
		panic(err)
	}

	return Parameters{
		degree:  p.Degree,
		modulus: p.Modulus,

		digestSize: p.DigestSize,
		hashNew:    hashNew,

		workerCount: p.WorkerCount,
	}
}

// Parameters is a read-only structure for the commitment scheme parameters.
type Parameters struct {
	// degree is the length of committed vectors.
	// Denoted as N.
	degree int
	// modulus is the modulus of vector and matrix entries.
	// Denoted as Q.
	modulus uint64

	// digestSize is the byte length of commitment digests.
	digestSize int
	// hashNew creates fresh digest states.
	hashNew HashConstructor

	// workerCount fixes the number of commit workers. Zero means heuristic.
	workerCount int
}

// Degree returns the length of committed vectors.
func (p Parameters) Degree() int {
	return p.degree
}

// Modulus returns the modulus of vector and matrix entries.
func (p Parameters) Modulus() uint64 {
	return p.modulus
}

// DigestSize returns the byte length of commitment digests.
func (p Parameters) DigestSize() int {
	return p.digestSize
}

// WorkerCount returns the fixed number of commit workers.
// Zero means the heuristic worker count is used.
func (p Parameters) WorkerCount() int {
	return p.workerCount
}

// newHash creates a fresh digest state.
// Compile validates the constructor, so failures here are programmer error.
func (p Parameters) newHash() hash.Hash {
	h, err := p.hashNew(p.digestSize)
	if err != nil {
		panic(err)
	}
	return h
}
