package sampler

import (
	"testing"
)

const (
	shortLength = 4
	longLength  = 100
)

func benchmarkGenerate(b *testing.B, src Source, length int) {
	words := testWords(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := GeneratePassword(src, words, length, " "); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortPasswordFastSource(b *testing.B) {
	benchmarkGenerate(b, NewFastSource(1, 2), shortLength)
}

func BenchmarkLongPasswordFastSource(b *testing.B) {
	benchmarkGenerate(b, NewFastSource(1, 2), longLength)
}

func BenchmarkShortPasswordOSSource(b *testing.B) {
	benchmarkGenerate(b, osSource(b), shortLength)
}

func BenchmarkLongPasswordOSSource(b *testing.B) {
	benchmarkGenerate(b, osSource(b), longLength)
}
