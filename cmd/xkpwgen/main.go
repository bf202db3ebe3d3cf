// Package main is the entry point for the xkpwgen CLI.
//
// xkpwgen prints XKCD 936 style passphrases. All functionality lives in the
// internal/cli package, which defines the cobra command.
//
// Build-time variables (version, commit, date) are injected via ldflags.
// During development, they default to "dev", "none", and "unknown".
package main

import (
	"github.com/shinji-kodama/xkpwgen/internal/cli"
)

// version, commit, and date are set at build time via ldflags
// (-X main.version=...). They are shown by --version.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
