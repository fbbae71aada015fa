package reveler

import (
	"math"

	"github.com/reveler-crypto/reveler/cfft"
)

// Convolver computes circular convolutions of length-N vectors modulo Q.
//
// The convolution is computed in the transform domain: both inputs are
// transformed, multiplied pointwise, transformed back, scaled by 1/N and
// rounded to the nearest integer. Compile bounds N * (Q-1)^2 so that the
// accumulated double-precision error stays below 0.5 and the rounded
// result is exact.
type Convolver struct {
	Parameters Parameters

	transformer *cfft.FourierTransformer

	buffer convolverBuffer
}

type convolverBuffer struct {
	uFourier []complex128
	vFourier []complex128
}

// NewConvolver creates a new Convolver.
func NewConvolver(params Parameters) *Convolver {
	return &Convolver{
		Parameters: params,

		transformer: cfft.NewFourierTransformer(params.degree),

		buffer: newConvolverBuffer(params),
	}
}

// newConvolverBuffer creates a new convolverBuffer.
func newConvolverBuffer(params Parameters) convolverBuffer {
	return convolverBuffer{
		uFourier: make([]complex128, params.degree),
		vFourier: make([]complex128, params.degree),
	}
}

// ShallowCopy creates a shallow copy of Convolver that is thread-safe.
func (c *Convolver) ShallowCopy() *Convolver {
	return &Convolver{
		Parameters: c.Parameters,

		transformer: c.transformer.ShallowCopy(),

		buffer: newConvolverBuffer(c.Parameters),
	}
}

// Convolve computes the circular convolution of u and v modulo Q.
// Panics if u and v do not have length Degree.
func (c *Convolver) Convolve(u, v Vector) Vector {
	vOut := NewVector(c.Parameters)
	c.ConvolveAssign(u, v, vOut)
	return vOut
}

// ConvolveAssign computes the circular convolution of u and v modulo Q
// and writes it to vOut.
// Panics if u, v and vOut do not have length Degree.
func (c *Convolver) ConvolveAssign(u, v, vOut Vector) {
	if len(u) != c.Parameters.degree || len(v) != c.Parameters.degree || len(vOut) != c.Parameters.degree {
		panic("vector length mismatch")
	}

	for i := 0; i < c.Parameters.degree; i++ {
		c.buffer.uFourier[i] = complex(float64(u[i]), 0)
		c.buffer.vFourier[i] = complex(float64(v[i]), 0)
	}

	c.transformer.ForwardInPlace(c.buffer.uFourier)
	c.transformer.ForwardInPlace(c.buffer.vFourier)
	for i := 0; i < c.Parameters.degree; i++ {
		c.buffer.uFourier[i] *= c.buffer.vFourier[i]
	}
	c.transformer.InverseInPlace(c.buffer.uFourier)
	c.transformer.NormalizeInPlace(c.buffer.uFourier)

	q := int64(c.Parameters.modulus)
	for i := 0; i < c.Parameters.degree; i++ {
		// Add Q before reducing so negative roundoff cannot surface.
		r := int64(math.Round(real(c.buffer.uFourier[i])))
		vOut[i] = uint64((r%q + q) % q)
	}
}
