package fft

import (
	"github.com/ishandutta2007/altruct/ring"
)

// CyclicConvolution computes dataR[k] = sum over i of
// data1[i] * data2[(k-i) mod size] for the power-of-two size shared by all
// three buffers. All three buffers are clobbered; the result ends up in
// dataR. rootBase must be a principal root of unity of order rootOrder, a
// power of two not smaller than size, and size must be invertible in the
// ring.
func CyclicConvolution[T any](rg ring.Ring[T], dataR, data1, data2 []T, rootBase T, rootOrder int) {
	size := len(dataR)
	root := ring.Pow(rg, rootBase, rootOrder/size)
	iroot := ring.Pow(rg, root, size-1) // == root^-1

	// Frequency domain. The slice-header swaps keep dataR naming the
	// scratch buffer, so the final inverse transform writes into the
	// caller's result buffer.
	transformRec(rg, dataR, data1, size, root, 1)
	data1, dataR = dataR, data1
	transformRec(rg, dataR, data2, size, root, 1)
	data2, dataR = dataR, data2

	// Convolution in the time domain is a pointwise product in the
	// frequency domain.
	for i := 0; i < size; i++ {
		dataR[i] = rg.Mul(data1[i], data2[i])
	}

	// The inverse transform is the forward transform with the inverse
	// root, scaled by 1/size.
	data1, dataR = dataR, data1
	transformRec(rg, dataR, data1, size, iroot, 1)
	isize := rg.Div(rg.One(), rg.FromInt(int64(size)))
	for i := 0; i < size; i++ {
		dataR[i] = rg.Mul(dataR[i], isize)
	}
}

// Convolve returns the ordinary (acyclic) convolution of u and v, of
// length len(u)+len(v)-1. Both inputs are zero-padded to the next power of
// two that fits the full result, so the cyclic transform computes the
// linear convolution exactly.
func Convolve[T any](rg ring.Ring[T], u, v []T, rootBase T, rootOrder int) []T {
	n := len(u) + len(v) - 1
	l := 1
	for l < n {
		l *= 2
	}
	ub := padToLen(rg, u, l)
	vb := padToLen(rg, v, l)
	r := padToLen(rg, nil, l)
	CyclicConvolution(rg, r, ub, vb, rootBase, rootOrder)
	return r[:n]
}

// CyclicConvolve convolves a kernel u against a cyclic list v whose period
// is len(v): r[k] = sum over i of u[i] * v[(k-i) mod len(v)], returned with
// length len(u)+len(v)-1. When the kernel is longer than the period, v is
// replicated to the smallest multiple of its own length that covers the
// kernel; the tail of v is also wrapped in front of index zero (cyclically,
// at the top of the transform buffer), and after the transform the
// wrap-around contributions are folded back into the in-range positions.
func CyclicConvolve[T any](rg ring.Ring[T], u, v []T, rootBase T, rootOrder int) []T {
	uSize, vSize := len(u), len(v)
	vvSize := (uSize + vSize - 1) / vSize * vSize
	n := vSize + uSize - 1
	nn := vvSize + uSize - 1
	l := 1
	for l < nn {
		l *= 2
	}
	ub := padToLen(rg, u, l)
	vb := padToLen(rg, v, l)
	r := padToLen(rg, nil, l)
	for i := vSize; i < vvSize; i++ {
		vb[i] = vb[i-vSize]
	}
	for i := 1; i < uSize; i++ {
		vb[l-i] = vb[vvSize-i]
	}
	CyclicConvolution(rg, r, ub, vb, rootBase, rootOrder)
	for i := 1; i < uSize; i++ {
		r[n-i] = r[uSize-1-i]
	}
	return r[:n]
}

// padToLen copies src into a fresh buffer of length l, filling the rest
// with the ring's zero.
func padToLen[T any](rg ring.Ring[T], src []T, l int) []T {
	out := make([]T, l)
	copy(out, src)
	for i := len(src); i < l; i++ {
		out[i] = rg.Zero()
	}
	return out
}
