package sampler

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
)

// Source is a source of uniformly random choices.
//
// IntN returns a value in [0, n) with every value equally likely. It panics
// if n <= 0. *math/rand/v2.Rand satisfies Source and draws bounded values
// without modulo bias.
type Source interface {
	IntN(n int) int
}

// ErrEntropySource is matched by errors.Is when the operating system
// cannot supply random bytes.
var ErrEntropySource = errors.New("entropy source unavailable")

// EntropyError reports a failure to read from the OS random generator.
type EntropyError struct {
	Err error
}

// Error implements error.
func (e *EntropyError) Error() string {
	return fmt.Sprintf("failed to initialize random generator: %v", e.Err)
}

// Unwrap returns the underlying read error.
func (e *EntropyError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrEntropySource) hold for every EntropyError.
func (e *EntropyError) Is(target error) bool {
	return target == ErrEntropySource
}

// readerSource adapts a byte stream of random data to a math/rand/v2 Source.
// A failed read panics: it is raised only after the stream was probed
// successfully, and a passphrase must never be built from partial entropy.
type readerSource struct {
	r io.Reader
}

func (s readerSource) Uint64() uint64 {
	var b [8]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		panic(&EntropyError{Err: err})
	}
	return binary.LittleEndian.Uint64(b[:])
}

// NewOSSource returns a Source backed by crypto/rand.
//
// The OS generator is probed once; if it cannot produce bytes the returned
// error is an *EntropyError. There is no fallback to a weaker generator.
func NewOSSource() (*rand.Rand, error) {
	return newReaderSource(crand.Reader)
}

func newReaderSource(r io.Reader) (*rand.Rand, error) {
	var probe [8]byte
	if _, err := io.ReadFull(r, probe[:]); err != nil {
		return nil, &EntropyError{Err: err}
	}
	return rand.New(readerSource{r: r}), nil
}

// NewFastSource returns a PCG-backed Source seeded with the given values.
// It is fast and reproducible, and must not be used for real passphrases.
func NewFastSource(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}
