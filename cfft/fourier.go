// Package cfft implements complex discrete Fourier transforms over float64,
// used for transform-domain convolution.
package cfft

import (
	"math"

	"github.com/reveler-crypto/reveler/num"
)

// FourierTransformer computes forward and inverse Fourier transforms
// of fixed-length complex vectors.
// Power-of-two lengths use a radix-2 transform with precomputed twiddle
// factors; other lengths fall back to the Bluestein chirp-z transform.
type FourierTransformer struct {
	degree int

	tw    []complex128
	twInv []complex128

	bluestein *bluestein
}

// NewFourierTransformer creates a new FourierTransformer with the given degree.
// Panics if N is not positive.
func NewFourierTransformer(N int) *FourierTransformer {
	if N <= 0 {
		panic("degree must be positive")
	}

	if !num.IsPowerOfTwo(N) {
		return &FourierTransformer{
			degree:    N,
			bluestein: newBluestein(N),
		}
	}

	tw := make([]complex128, N/2)
	twInv := make([]complex128, N/2)
	for i := 0; i < N/2; i++ {
		e := -2 * math.Pi * float64(i) / float64(N)
		tw[i] = complex(math.Cos(e), math.Sin(e))
		twInv[i] = complex(math.Cos(e), -math.Sin(e))
	}
	num.BitReverseInPlace(tw)
	num.BitReverseInPlace(twInv)

	return &FourierTransformer{
		degree: N,

		tw:    tw,
		twInv: twInv,
	}
}

// ShallowCopy creates a shallow copy of FourierTransformer that is thread-safe.
func (f *FourierTransformer) ShallowCopy() *FourierTransformer {
	fOut := &FourierTransformer{
		degree: f.degree,

		tw:    f.tw,
		twInv: f.twInv,
	}
	if f.bluestein != nil {
		fOut.bluestein = f.bluestein.ShallowCopy()
	}
	return fOut
}

// Degree returns the transform length of the FourierTransformer.
func (f *FourierTransformer) Degree() int {
	return f.degree
}

// ForwardInPlace computes the Fourier transform of v in-place.
// Output is in natural (index) order.
func (f *FourierTransformer) ForwardInPlace(v []complex128) {
	if f.bluestein != nil {
		f.bluestein.forwardAssign(v, v)
		return
	}

	t := f.degree
	for m := 1; m < f.degree; m <<= 1 {
		t >>= 1
		for i := 0; i < m; i++ {
			j1 := 2 * i * t
			j2 := j1 + t
			for j := j1; j < j2; j++ {
				u := v[j]
				w := v[j+t] * f.tw[i]

				v[j] = u + w
				v[j+t] = u - w
			}
		}
	}

	num.BitReverseInPlace(v)
}

// InverseInPlace computes the inverse Fourier transform of v in-place,
// without normalization.
func (f *FourierTransformer) InverseInPlace(v []complex128) {
	if f.bluestein != nil {
		f.bluestein.inverseAssign(v, v)
		return
	}

	num.BitReverseInPlace(v)

	t := 1
	for m := f.degree >> 1; m >= 1; m >>= 1 {
		for i := 0; i < m; i++ {
			j1 := 2 * i * t
			j2 := j1 + t
			for j := j1; j < j2; j++ {
				u := v[j]
				w := v[j+t]

				v[j] = u + w
				v[j+t] = (u - w) * f.twInv[i]
			}
		}
		t <<= 1
	}
}

// NormalizeInPlace normalizes a vector in-place, scaling it by 1/N.
func (f *FourierTransformer) NormalizeInPlace(v []complex128) {
	scale := complex(1/float64(f.degree), 0)
	for i := 0; i < f.degree; i++ {
		v[i] *= scale
	}
}
