package sampler

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInsufficientWords is matched by errors.Is when more distinct
	// items are requested than the candidate list holds.
	ErrInsufficientWords = errors.New("insufficient words")

	// ErrNegativeLength is returned for a negative sample size.
	ErrNegativeLength = errors.New("sample size must not be negative")
)

// InsufficientWordsError reports a request for more distinct words than
// the candidate list provides.
type InsufficientWordsError struct {
	Requested int
	Available int
}

// Error implements error.
func (e *InsufficientWordsError) Error() string {
	return fmt.Sprintf("cannot draw %d distinct words from a list of %d", e.Requested, e.Available)
}

// Is makes errors.Is(err, ErrInsufficientWords) hold.
func (e *InsufficientWordsError) Is(target error) bool {
	return target == ErrInsufficientWords
}

// SampleIndices returns k distinct indices drawn uniformly from [0, n).
//
// It runs a partial Fisher-Yates shuffle over the virtual permutation
// 0..n-1. Step i swaps position i with a uniformly chosen position in
// [i, n) and emits the value that lands at i. Only displaced positions are
// stored, so time and memory are O(k) regardless of n. Every ordered
// k-tuple of distinct indices is equally likely.
func SampleIndices(src Source, n, k int) ([]int, error) {
	if k < 0 {
		return nil, ErrNegativeLength
	}
	if k > n {
		return nil, &InsufficientWordsError{Requested: k, Available: n}
	}

	// displaced[p] is the value currently at position p, for every position
	// touched by a swap. Untouched positions hold their own index.
	displaced := make(map[int]int, k)
	at := func(p int) int {
		if v, ok := displaced[p]; ok {
			return v
		}
		return p
	}

	indices := make([]int, k)
	for i := 0; i < k; i++ {
		j := i + src.IntN(n-i)
		indices[i] = at(j)
		// Position i is never read again, so only j needs updating.
		displaced[j] = at(i)
	}
	return indices, nil
}

// Sample returns k distinct elements of items chosen uniformly at random.
// items is not modified.
func Sample[T any](src Source, items []T, k int) ([]T, error) {
	indices, err := SampleIndices(src, len(items), k)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = items[idx]
	}
	return out, nil
}

// GeneratePassword draws length distinct words from words and joins them
// with separator.
//
// A zero length yields the empty string. If length exceeds len(words) the
// error is an *InsufficientWordsError and no passphrase is returned.
func GeneratePassword(src Source, words []string, length int, separator string) (string, error) {
	chosen, err := Sample(src, words, length)
	if err != nil {
		return "", err
	}
	return strings.Join(chosen, separator), nil
}
