package wordlist

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"
)

// Variant names one of the wordlists compiled into the binary.
type Variant string

const (
	// EFFLarge is the EFF large diceware list. It is the default.
	EFFLarge Variant = "eff-large"

	// BIP39English is the BIP-39 English mnemonic list.
	BIP39English Variant = "bip39-english"

	// DefaultVariant is used when no list is configured.
	DefaultVariant = EFFLarge

	// FallbackVariant replaces DefaultVariant in builds that do not embed
	// the default list. It is always available.
	FallbackVariant = BIP39English
)

var (
	// ErrUnknownVariant is returned for a list name that is not built in.
	ErrUnknownVariant = errors.New("unknown wordlist")

	// ErrNotEmbedded is returned when a built-in list was not embedded at
	// build time.
	ErrNotEmbedded = errors.New("wordlist not embedded in this build")

	// ErrIntegrity is matched by errors.Is for any invariant violation.
	ErrIntegrity = errors.New("wordlist integrity violation")
)

// Variants returns all built-in list names in display order.
func Variants() []Variant {
	return []Variant{EFFLarge, BIP39English}
}

// String returns the list name.
func (v Variant) String() string {
	return string(v)
}

// ExpectedCount returns the number of words the list must contain, or 0
// for an unknown variant.
func (v Variant) ExpectedCount() int {
	switch v {
	case EFFLarge:
		return 7776
	case BIP39English:
		return 2048
	default:
		return 0
	}
}

// Description returns a human-readable title for the list.
func (v Variant) Description() string {
	switch v {
	case EFFLarge:
		return "EFF long wordlist July 2016"
	case BIP39English:
		return "BIP-39 English wordlist"
	default:
		return string(v)
	}
}

// ParseVariant converts a list name to a Variant (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := loaders[v]; !ok {
		names := make([]string, 0, len(loaders))
		for _, known := range Variants() {
			names = append(names, known.String())
		}
		return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownVariant, s, strings.Join(names, ", "))
	}
	return v, nil
}

// loaders parse each built-in list at most once per process.
var loaders = map[Variant]func() ([]string, error){
	EFFLarge:     sync.OnceValues(loadEFFLarge),
	BIP39English: sync.OnceValues(loadBIP39English),
}

// Builtin returns the words of a built-in list.
//
// The list is parsed once; every call returns a fresh copy, so callers may
// not affect each other or the shared list.
func Builtin(v Variant) ([]string, error) {
	load, ok := loaders[v]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, v)
	}
	words, err := load()
	if err != nil {
		return nil, err
	}
	return slices.Clone(words), nil
}

// BuiltinWords returns the default list.
func BuiltinWords() ([]string, error) {
	return Builtin(DefaultVariant)
}

// Embedded reports whether the list for v is available in this build.
func Embedded(v Variant) bool {
	load, ok := loaders[v]
	if !ok {
		return false
	}
	_, err := load()
	return !errors.Is(err, ErrNotEmbedded)
}

// EffectiveDefault returns DefaultVariant, or FallbackVariant when the
// default list was not embedded.
func EffectiveDefault() Variant {
	if Embedded(DefaultVariant) {
		return DefaultVariant
	}
	return FallbackVariant
}

// ProblemKind classifies a single invariant violation.
type ProblemKind string

const (
	ProblemEmptyList  ProblemKind = "empty list"
	ProblemEmpty      ProblemKind = "empty entry"
	ProblemWhitespace ProblemKind = "contains whitespace"
	ProblemDuplicate  ProblemKind = "duplicate"
)

// Problem is one invariant violation. Index is zero-based; it is -1 for
// ProblemEmptyList.
type Problem struct {
	Index int
	Word  string
	Kind  ProblemKind
}

func (p Problem) String() string {
	if p.Kind == ProblemEmptyList {
		return string(p.Kind)
	}
	return fmt.Sprintf("entry %d %q: %s", p.Index+1, p.Word, p.Kind)
}

// IntegrityError lists every invariant violation found in a wordlist.
type IntegrityError struct {
	Problems []Problem
}

// maxReportedProblems caps the problems shown in an error message.
const maxReportedProblems = 5

// Error implements error.
func (e *IntegrityError) Error() string {
	shown := e.Problems
	if len(shown) > maxReportedProblems {
		shown = shown[:maxReportedProblems]
	}
	parts := make([]string, len(shown))
	for i, p := range shown {
		parts[i] = p.String()
	}
	msg := fmt.Sprintf("%s: %s", ErrIntegrity, strings.Join(parts, "; "))
	if extra := len(e.Problems) - len(shown); extra > 0 {
		msg += fmt.Sprintf(" (and %d more)", extra)
	}
	return msg
}

// Is makes errors.Is(err, ErrIntegrity) hold.
func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

// Validate checks the wordlist invariants and returns an *IntegrityError
// describing every violation, or nil.
func Validate(words []string) error {
	if len(words) == 0 {
		return &IntegrityError{Problems: []Problem{{Index: -1, Kind: ProblemEmptyList}}}
	}

	var problems []Problem
	seen := make(map[string]struct{}, len(words))
	for i, w := range words {
		switch {
		case w == "":
			problems = append(problems, Problem{Index: i, Word: w, Kind: ProblemEmpty})
		case strings.IndexFunc(w, unicode.IsSpace) >= 0:
			problems = append(problems, Problem{Index: i, Word: w, Kind: ProblemWhitespace})
		}
		if _, dup := seen[w]; dup && w != "" {
			problems = append(problems, Problem{Index: i, Word: w, Kind: ProblemDuplicate})
		}
		seen[w] = struct{}{}
	}

	if len(problems) > 0 {
		return &IntegrityError{Problems: problems}
	}
	return nil
}
