// Package fft provides radix-2 Fourier transforms over any ring with a
// principal root of unity of the required order, plus ordinary and cyclic
// convolution and an FFT-backed polynomial multiplication strategy.
//
// Transforms work over a prime field through an NTT-friendly root just as
// well as over the complex numbers; the caller supplies the root and the
// ring, and everything here is agnostic to which it is.
package fft

import (
	"github.com/ishandutta2007/altruct/ring"
)

// Transform runs an in-place decimation-in-frequency FFT over data, whose
// length must be a power of two, using a principal root of unity of that
// order. A butterfly pass of half-width h combines each pair
// (data[i], data[i+h]) into their sum and root-scaled difference, the root
// is squared between passes, and a final bit-reversal permutation restores
// natural order. A non-power-of-two length leaves data untouched.
func Transform[T any](rg ring.Ring[T], data []T, root T) {
	size := len(data)
	if size&(size-1) != 0 {
		return
	}
	for m := size; m > 1; m /= 2 {
		h := m / 2
		for base := 0; base < size; base += m {
			w := rg.One()
			for i := base; i < base+h; i++ {
				t := rg.Sub(data[i], data[i+h])
				data[i] = rg.Add(data[i], data[i+h])
				data[i+h] = rg.Mul(t, w)
				w = rg.Mul(w, root)
			}
		}
		root = rg.Mul(root, root)
	}
	for i, j := 0, 1; j < size-1; j++ {
		for k := size / 2; ; k /= 2 {
			i ^= k
			if i >= k {
				break
			}
		}
		if j < i {
			data[i], data[j] = data[j], data[i]
		}
	}
}

// TransformTo runs a recursive out-of-place FFT: src is split by stride
// into even and odd halves, each is transformed with the squared root, and
// a single butterfly pass combines the halves into dest. dest and src must
// not alias and share the power-of-two length. Accumulated rounding error
// is smaller than with Transform, which matters for floating-point rings.
func TransformTo[T any](rg ring.Ring[T], dest, src []T, root T) {
	transformRec(rg, dest, src, len(dest), root, 1)
}

func transformRec[T any](rg ring.Ring[T], dest, src []T, size int, root T, off int) {
	if size <= 1 {
		dest[0] = src[0]
		return
	}
	h := size / 2
	root2 := rg.Mul(root, root)
	transformRec(rg, dest, src, h, root2, off*2)
	transformRec(rg, dest[h:], src[off:], h, root2, off*2)
	w := rg.One()
	for i := 0; i < h; i++ {
		z := rg.Mul(dest[i+h], w)
		dest[i+h] = rg.Sub(dest[i], z)
		dest[i] = rg.Add(dest[i], z)
		w = rg.Mul(w, root)
	}
}
