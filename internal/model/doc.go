// Package model defines the shared value types for the xkpwgen CLI.
//
// This package contains plain data structures with no external dependencies.
// Nothing here is persisted: a GenerationRequest lives for a single
// passphrase, and the colour mode is resolved once per run.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
