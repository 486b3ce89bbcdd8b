package coprime

import (
	"bufio"
	"crypto/rand"
	"encoding/binary"
	"io"
	mrand "math/rand/v2"
)

// entropyBufferSize is the number of entropy bytes fetched per read.
const entropyBufferSize = 4096

// Sampler draws uniformly distributed integers in [1, max].
type Sampler interface {
	// Draw returns a uniform random integer in [1, upper]. upper must be positive.
	Draw(upper int64) int64
}

// ReaderSampler is a Sampler fed by a stream of random bytes.
// It is not safe for concurrent use.
type ReaderSampler struct {
	rng *mrand.Rand
}

// NewCryptoSampler returns a Sampler backed by the operating system's
// cryptographically secure random number generator.
func NewCryptoSampler() *ReaderSampler {
	return NewReaderSampler(rand.Reader)
}

// NewReaderSampler returns a Sampler that consumes random bytes from r.
// The reader is buffered; r must never run dry, or Draw panics.
func NewReaderSampler(r io.Reader) *ReaderSampler {
	src := &readerSource{r: bufio.NewReaderSize(r, entropyBufferSize)}
	return &ReaderSampler{rng: mrand.New(src)}
}

// Draw returns a uniform random integer in [1, upper].
func (s *ReaderSampler) Draw(upper int64) int64 {
	return s.rng.Int64N(upper) + 1
}

// readerSource adapts a byte stream to math/rand/v2's Source interface.
type readerSource struct {
	r   *bufio.Reader
	buf [8]byte
}

// Uint64 implements mrand.Source.
func (s *readerSource) Uint64() uint64 {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		// The entropy source is gone; there is nothing sensible to fall back to.
		panic("coprime: reading random source: " + err.Error())
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}
