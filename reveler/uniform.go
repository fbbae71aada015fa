package reveler

import (
	"github.com/reveler-crypto/reveler/csprng"
)

// UniformSampler samples vectors and matrices with entries uniform over [0, Q).
type UniformSampler struct {
	Parameters Parameters

	*csprng.UniformSampler
}

// NewUniformSampler creates a new UniformSampler.
func NewUniformSampler(params Parameters) *UniformSampler {
	return &UniformSampler{
		Parameters: params,

		UniformSampler: csprng.NewUniformSampler(),
	}
}

// NewUniformSamplerWithSeed creates a new UniformSampler with seed.
// Samplers created with the same seed produce the same values,
// which makes key and message generation reproducible.
func NewUniformSamplerWithSeed(params Parameters, seed []byte) *UniformSampler {
	return &UniformSampler{
		Parameters: params,

		UniformSampler: csprng.NewUniformSamplerWithSeed(seed),
	}
}

// SampleMod uniformly samples a random value in [0, Q).
func (s *UniformSampler) SampleMod() uint64 {
	return s.SampleN(s.Parameters.modulus)
}

// SampleVec uniformly samples a random vector over [0, Q).
func (s *UniformSampler) SampleVec() Vector {
	vOut := NewVector(s.Parameters)
	s.SampleVecAssign(vOut)
	return vOut
}

// SampleVecAssign uniformly samples a random vector over [0, Q) and writes it to vOut.
func (s *UniformSampler) SampleVecAssign(vOut Vector) {
	for i := range vOut {
		vOut[i] = s.SampleN(s.Parameters.modulus)
	}
}

// SampleMatrix uniformly samples a random matrix over [0, Q).
func (s *UniformSampler) SampleMatrix() Matrix {
	MOut := NewMatrix(s.Parameters)
	for i := range MOut {
		s.SampleVecAssign(MOut[i])
	}
	return MOut
}
