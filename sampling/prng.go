// Package sampling generates random coefficients and polynomials, either
// from crypto/rand or deterministically from a keyed stream so that
// benchmark and test inputs are reproducible across runs.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// PRNG is a source of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG reads from crypto/rand and may be shared between
// goroutines.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG deterministically generates a sequence of random bytes from a
// key using the blake2b hash function. Two instances built with the same
// key produce the same stream.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG. A nil key is treated
// as []byte{}, which still yields a fixed, reproducible stream.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = append([]byte(nil), key...)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// NewLabeledPRNG derives the key from a human-readable label, so callers
// can name their streams ("karatsuba-bench", "division-fuzz") instead of
// managing raw seeds. The label is hashed with blake3 down to a 32-byte
// key.
func NewLabeledPRNG(label string) (*KeyedPRNG, error) {
	key := blake3.Sum256([]byte(label))
	return NewKeyedPRNG(key[:])
}

// Key returns a copy of the key used to seed the PRNG. Passing it to
// NewKeyedPRNG reproduces the same stream from the start.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read fills sum with the next bytes of the stream. Concurrent readers
// make the sequence nondeterministic; use one KeyedPRNG per goroutine.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to the start of its stream.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}

// RandUint64 reads the next 8 bytes of prng as a little-endian uint64.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}
