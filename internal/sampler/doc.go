// Package sampler draws distinct words uniformly at random and joins them
// into passphrases.
//
// Sampling is without replacement: a passphrase never repeats a word, and a
// request for more words than the list holds fails with
// ErrInsufficientWords instead of degrading to sampling with replacement.
//
// Randomness comes from a Source. Production passphrases use NewOSSource,
// which is backed by the operating system CSPRNG. NewFastSource returns a
// seeded PCG generator for benchmarks and reproducible tests only.
package sampler
