// Package cli implements the cobra-based command line of xkpwgen.
//
// xkpwgen has a single, flat root command: running it prints passphrases,
// and the --words and --stats flags switch it to printing the selected
// wordlist or its statistics instead. This file defines the command, its
// flags and the translation of errors into exit codes.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shinji-kodama/xkpwgen/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootFlags holds the flag values of the root command.
// A fresh instance is bound on every NewRootCommand call, so commands built
// in tests do not share state.
type rootFlags struct {
	length       int
	number       int
	separator    string
	colour       string
	wordlist     string
	wordlistFile string
	configPath   string

	// printWords dumps the selected wordlist instead of generating.
	printWords bool

	// printStats prints WordlistStatistics instead of generating.
	printStats bool

	// jsonOutput switches every output, including errors, to JSON.
	jsonOutput bool

	// verbose lowers the log level to debug.
	verbose bool
}

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "xkpwgen",
		Short: "Generate memorable passphrases from a wordlist",
		Long: `xkpwgen generates XKCD 936 style passphrases: each passphrase is a number
of distinct words drawn uniformly at random from a wordlist, using the
operating system's secure random generator.

Examples:
  xkpwgen
  xkpwgen -l 6 -n 3 -s -
  xkpwgen --wordlist bip39-english --json
  xkpwgen --stats

xkpwgen copyright (C) 2017 Sebastian Wiesner
eff-large wordlist copyright (C) 2016 EFF <https://www.eff.org/copyright>`,

		// Positional arguments are a usage mistake, not a silent no-op.
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return model.WrapCLIError(model.ExitUsageError, "invalid arguments", err)
			}
			return nil
		},

		// We print errors (and usage for argument errors) ourselves in Run,
		// in text or JSON depending on --json.
		SilenceUsage:  true,
		SilenceErrors: true,

		// cobra reports flag group conflicts as plain errors; run the check
		// here first so they exit with ExitUsageError.
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.ValidateFlagGroups(); err != nil {
				return model.WrapCLIError(model.ExitUsageError, "invalid arguments", err)
			}
			return nil
		},

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, flags)
		},
	}

	f := rootCmd.Flags()
	f.IntVarP(&flags.length, "length", "l", 4, "The number of words in each passphrase")
	f.IntVarP(&flags.number, "number", "n", 5, "The number of passphrases to generate at once")
	f.StringVarP(&flags.separator, "separator", "s", " ", "The separator between words in a passphrase")
	f.StringVar(&flags.colour, "colour", "auto", "Whether to colour the output: yes, no, auto")
	f.StringVar(&flags.wordlist, "wordlist", "eff-large", "The built-in wordlist to use: eff-large, bip39-english")
	f.StringVar(&flags.wordlistFile, "wordlist-file", "", "Read words from this file instead of a built-in list")
	f.StringVar(&flags.configPath, "config", "", "Configuration file (default $XDG_CONFIG_HOME/xkpwgen/config.yaml)")
	f.BoolVar(&flags.printWords, "words", false, "Print the selected wordlist and exit")
	f.BoolVar(&flags.printStats, "stats", false, "Print statistics about the selected wordlist and exit")
	f.BoolVar(&flags.jsonOutput, "json", false, "Output in JSON format")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output on stderr")

	rootCmd.MarkFlagsMutuallyExclusive("words", "stats")
	rootCmd.MarkFlagsMutuallyExclusive("wordlist", "wordlist-file")

	// Accept the American spelling as an alias of --colour.
	f.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "color" {
			name = "colour"
		}
		return pflag.NormalizedName(name)
	})

	// Malformed values such as "-l four" become usage errors with exit code 2.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.WrapCLIError(model.ExitUsageError, "invalid arguments", err)
	})

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n" + versionDetails())

	return rootCmd
}

// Execute runs the root command and exits the process with the resulting
// exit code. This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	os.Exit(int(Run(rootCmd)))
}

// Run executes the command, reports any error on the command's error
// stream and returns the exit code.
func Run(rootCmd *cobra.Command) model.ExitCode {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return model.ExitSuccess
	}
	if cmd == nil {
		cmd = rootCmd
	}

	jsonOutput, _ := rootCmd.Flags().GetBool("json")
	code := exitCodeFor(err)
	printError(cmd.ErrOrStderr(), jsonOutput, err)
	if code == model.ExitUsageError && !jsonOutput {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%s", cmd.UsageString())
	}
	return code
}

// exitCodeFor extracts the exit code carried by a CLIError anywhere in the
// chain. Other errors map to ExitGeneralError.
func exitCodeFor(err error) model.ExitCode {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json flag.
func printError(w io.Writer, jsonOutput bool, err error) {
	message := err.Error()
	var underlying error
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		message = cliErr.Message
		underlying = cliErr.Err
	}

	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// newLogger builds the diagnostic logger. Logs go to stderr so they never
// mix with passphrases on stdout; passphrases themselves are never logged.
func newLogger(w io.Writer, flags *rootFlags) *slog.Logger {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if flags.jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}
