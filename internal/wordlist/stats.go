package wordlist

import (
	"slices"
	"unicode/utf8"
)

// Statistics summarises the word lengths of a list. Lengths are counted in
// runes, not bytes.
type Statistics struct {
	Count         int     `json:"count"`
	MinLength     int     `json:"minLength"`
	MaxLength     int     `json:"maxLength"`
	AverageLength float64 `json:"averageLength"`
	MedianLength  int     `json:"medianLength"`
}

// ComputeStatistics derives Statistics from words. An empty list yields the
// zero value.
func ComputeStatistics(words []string) Statistics {
	if len(words) == 0 {
		return Statistics{}
	}

	lengths := make([]int, len(words))
	sum := 0
	for i, w := range words {
		lengths[i] = utf8.RuneCountInString(w)
		sum += lengths[i]
	}
	slices.Sort(lengths)

	return Statistics{
		Count:         len(lengths),
		MinLength:     lengths[0],
		MaxLength:     lengths[len(lengths)-1],
		AverageLength: float64(sum) / float64(len(lengths)),
		MedianLength:  median(lengths),
	}
}

// median of sorted, non-empty lengths. For an even count the two middle
// values are averaged with integer division, which truncates.
func median(sorted []int) int {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
