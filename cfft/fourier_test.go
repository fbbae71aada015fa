package cfft_test

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/reveler-crypto/reveler/cfft"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-8

// naiveDFT computes the Fourier transform directly in O(N^2).
func naiveDFT(v []complex128) []complex128 {
	N := len(v)
	vOut := make([]complex128, N)
	for k := 0; k < N; k++ {
		for j := 0; j < N; j++ {
			e := -2 * math.Pi * float64(j) * float64(k) / float64(N)
			vOut[k] += v[j] * cmplx.Exp(complex(0, e))
		}
	}
	return vOut
}

func randComplexVec(r *rand.Rand, N int) []complex128 {
	v := make([]complex128, N)
	for i := range v {
		v[i] = complex(r.Float64()-0.5, r.Float64()-0.5)
	}
	return v
}

func TestFourierTransformer(t *testing.T) {
	r := rand.New(rand.NewSource(0))

	// Both the radix-2 and the Bluestein path.
	for _, N := range []int{1, 2, 4, 8, 16, 12, 27, 100} {
		ft := cfft.NewFourierTransformer(N)

		t.Run(fmt.Sprintf("Forward/N=%v", N), func(t *testing.T) {
			v := randComplexVec(r, N)
			vWant := naiveDFT(v)

			vOut := make([]complex128, N)
			copy(vOut, v)
			ft.ForwardInPlace(vOut)

			for i := 0; i < N; i++ {
				assert.InDelta(t, real(vWant[i]), real(vOut[i]), eps)
				assert.InDelta(t, imag(vWant[i]), imag(vOut[i]), eps)
			}
		})

		t.Run(fmt.Sprintf("RoundTrip/N=%v", N), func(t *testing.T) {
			v := randComplexVec(r, N)

			vOut := make([]complex128, N)
			copy(vOut, v)
			ft.ForwardInPlace(vOut)
			ft.InverseInPlace(vOut)
			ft.NormalizeInPlace(vOut)

			for i := 0; i < N; i++ {
				assert.InDelta(t, real(v[i]), real(vOut[i]), eps)
				assert.InDelta(t, imag(v[i]), imag(vOut[i]), eps)
			}
		})
	}
}

func TestFourierTransformerShallowCopy(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for _, N := range []int{16, 12} {
		t.Run(fmt.Sprintf("N=%v", N), func(t *testing.T) {
			ft := cfft.NewFourierTransformer(N)
			ftCopy := ft.ShallowCopy()

			v := randComplexVec(r, N)
			vOut := make([]complex128, N)
			vOutCopy := make([]complex128, N)
			copy(vOut, v)
			copy(vOutCopy, v)

			ft.ForwardInPlace(vOut)
			ftCopy.ForwardInPlace(vOutCopy)

			assert.Equal(t, vOut, vOutCopy)
		})
	}
}
