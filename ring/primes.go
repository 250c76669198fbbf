package ring

import (
	"errors"
	"math/big"
	"math/bits"
)

// IsPrime applies Baillie-PSW, which is 100% accurate for numbers below 2^64.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

var errNoNTTPrime = errors.New("no suitable prime below 63 bits")

// NTTFriendlyPrime returns a prime q of roughly logQ bits with
// q = 1 (mod order), so that the field of order q admits principal roots of
// unity up to the given (power-of-two) order. The search alternates around
// 2^logQ, preferring the candidate closest to the base power of two. The
// order must not exceed 2^logQ, otherwise no candidate near the base can
// satisfy the congruence.
func NTTFriendlyPrime(logQ, order int) (uint64, error) {
	if logQ < 2 || logQ > 62 || !IsPowerOfTwo(uint64(order)) || uint64(order) > 1<<logQ {
		return 0, errNoNTTPrime
	}

	qPow2 := uint64(1) << logQ
	next := qPow2 + 1
	prev := qPow2 + 1

	for {
		if bits.Len64(next) <= maxBitUsage {
			next += uint64(order)
			if IsPrime(next) {
				return next, nil
			}
		}
		if prev > uint64(order) {
			prev -= uint64(order)
			if IsPrime(prev) {
				return prev, nil
			}
		} else if bits.Len64(next) > maxBitUsage {
			return 0, errNoNTTPrime
		}
	}
}

// NextNTTFriendlyPrime returns the smallest prime strictly greater than q
// with q' = 1 (mod order). The input is typically itself a prime returned
// by NTTFriendlyPrime.
func NextNTTFriendlyPrime(q uint64, order int) (uint64, error) {
	qNext := q - (q-1)%uint64(order) + uint64(order)
	for !IsPrime(qNext) {
		qNext += uint64(order)
		if bits.Len64(qNext) > maxBitUsage {
			return 0, errNoNTTPrime
		}
	}
	return qNext, nil
}
