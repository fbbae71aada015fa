package cfft

import (
	"math"
	"math/cmplx"

	"github.com/reveler-crypto/reveler/num"
)

// bluestein computes Fourier transforms of arbitrary length
// as a circular convolution of power-of-two length,
// using the chirp-z decomposition jk = (j^2 + k^2 - (k-j)^2) / 2.
type bluestein struct {
	degree int

	sub    *FourierTransformer
	padded int

	// chirp[k] = exp(-pi i k^2 / degree).
	chirp []complex128
	// chirpFourier is the forward transform of the zero-padded,
	// cyclically extended conjugate chirp.
	chirpFourier []complex128

	buf []complex128
}

// newBluestein creates a new bluestein transformer with the given degree.
func newBluestein(N int) *bluestein {
	padded := num.NextPowerOfTwo(2*N - 1)
	sub := NewFourierTransformer(padded)

	chirp := make([]complex128, N)
	for k := 0; k < N; k++ {
		// k^2 mod 2N keeps the phase argument small.
		kk := (k * k) % (2 * N)
		e := -math.Pi * float64(kk) / float64(N)
		chirp[k] = complex(math.Cos(e), math.Sin(e))
	}

	chirpFourier := make([]complex128, padded)
	chirpFourier[0] = cmplx.Conj(chirp[0])
	for k := 1; k < N; k++ {
		c := cmplx.Conj(chirp[k])
		chirpFourier[k] = c
		chirpFourier[padded-k] = c
	}
	sub.ForwardInPlace(chirpFourier)

	return &bluestein{
		degree: N,

		sub:    sub,
		padded: padded,

		chirp:        chirp,
		chirpFourier: chirpFourier,

		buf: make([]complex128, padded),
	}
}

// ShallowCopy creates a shallow copy of bluestein that is thread-safe.
func (b *bluestein) ShallowCopy() *bluestein {
	return &bluestein{
		degree: b.degree,

		sub:    b.sub.ShallowCopy(),
		padded: b.padded,

		chirp:        b.chirp,
		chirpFourier: b.chirpFourier,

		buf: make([]complex128, b.padded),
	}
}

// forwardAssign computes the Fourier transform of v and assigns it to vOut.
func (b *bluestein) forwardAssign(v, vOut []complex128) {
	for k := 0; k < b.degree; k++ {
		b.buf[k] = v[k] * b.chirp[k]
	}
	for k := b.degree; k < b.padded; k++ {
		b.buf[k] = 0
	}

	b.sub.ForwardInPlace(b.buf)
	for j := 0; j < b.padded; j++ {
		b.buf[j] *= b.chirpFourier[j]
	}
	b.sub.InverseInPlace(b.buf)
	b.sub.NormalizeInPlace(b.buf)

	for k := 0; k < b.degree; k++ {
		vOut[k] = b.buf[k] * b.chirp[k]
	}
}

// inverseAssign computes the unnormalized inverse Fourier transform of v
// and assigns it to vOut.
func (b *bluestein) inverseAssign(v, vOut []complex128) {
	for k := 0; k < b.degree; k++ {
		vOut[k] = cmplx.Conj(v[k])
	}
	b.forwardAssign(vOut, vOut)
	for k := 0; k < b.degree; k++ {
		vOut[k] = cmplx.Conj(vOut[k])
	}
}
