package model

import (
	"fmt"
	"strings"

	"github.com/shinji-kodama/xkpwgen/internal/sampler"
)

// ColourMode controls whether passphrase output is coloured.
// It mirrors the --colour flag values accepted on the command line.
type ColourMode string

const (
	// ColourYes always colours text output.
	ColourYes ColourMode = "yes"

	// ColourNo never colours output.
	ColourNo ColourMode = "no"

	// ColourAuto colours output only when stdout is a terminal.
	ColourAuto ColourMode = "auto"
)

// String returns the string representation of ColourMode.
func (c ColourMode) String() string {
	return string(c)
}

// IsValid checks whether the ColourMode value is one of the
// predefined valid modes.
func (c ColourMode) IsValid() bool {
	switch c {
	case ColourYes, ColourNo, ColourAuto:
		return true
	default:
		return false
	}
}

// Enabled resolves the mode against whether the output is a terminal.
func (c ColourMode) Enabled(isTerminal bool) bool {
	switch c {
	case ColourYes:
		return true
	case ColourAuto:
		return isTerminal
	default:
		return false
	}
}

// ParseColourMode converts a string to a ColourMode.
// Matching is case-insensitive, so "Auto" and "AUTO" are accepted.
func ParseColourMode(s string) (ColourMode, error) {
	mode := ColourMode(strings.ToLower(s))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid colour mode: %q (valid: yes, no, auto)", s)
	}
	return mode, nil
}

// GenerationRequest holds the parameters of a single passphrase generation.
// It is built once per run and reused for every passphrase; the Words slice
// is shared and must be treated as read-only.
type GenerationRequest struct {
	// Words is the candidate wordlist to sample from.
	Words []string

	// Length is the number of distinct words per passphrase.
	Length int

	// Separator is placed between consecutive words. It may be empty.
	Separator string
}

// Validate checks that the request can be satisfied without repeating words.
// It returns a CLIError so the CLI can exit with the matching code before
// any passphrase is printed.
func (r GenerationRequest) Validate() error {
	if r.Length < 0 {
		return WrapCLIError(ExitUsageError,
			fmt.Sprintf("invalid length %d", r.Length), sampler.ErrNegativeLength)
	}
	if r.Length > len(r.Words) {
		return WrapCLIError(ExitInsufficientWords, "not enough words in the wordlist",
			&sampler.InsufficientWordsError{Requested: r.Length, Available: len(r.Words)})
	}
	return nil
}

// ExitCode defines the process exit codes of xkpwgen.
// These codes allow scripts to tell usage mistakes apart from
// environmental failures.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitUsageError indicates malformed or out-of-range command-line input.
	ExitUsageError ExitCode = 2

	// ExitInsufficientWords indicates the requested length exceeds the
	// number of words in the selected list.
	ExitInsufficientWords ExitCode = 3

	// ExitEntropyFailure indicates the operating system could not supply
	// random bytes.
	ExitEntropyFailure ExitCode = 4

	// ExitWordlistError indicates the selected wordlist is unavailable or
	// violates the wordlist invariants.
	ExitWordlistError ExitCode = 5

	// ExitConfigError indicates the configuration file could not be read
	// or contains invalid values.
	ExitConfigError ExitCode = 6
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
