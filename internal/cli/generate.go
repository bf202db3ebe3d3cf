// Package cli — generate.go implements the behaviour of the root command:
// resolving options from the config file and flags, loading the wordlist
// and printing passphrases, the wordlist itself or its statistics.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/xkpwgen/internal/config"
	"github.com/shinji-kodama/xkpwgen/internal/model"
	"github.com/shinji-kodama/xkpwgen/internal/sampler"
	"github.com/shinji-kodama/xkpwgen/internal/wordlist"
)

// options is the fully resolved configuration of one run.
type options struct {
	config.Config

	colour model.ColourMode

	// wordlistChosen is set when --wordlist was given on the command line.
	wordlistChosen bool
}

// runRoot is the main logic function of the root command.
func runRoot(cmd *cobra.Command, flags *rootFlags) error {
	logger := newLogger(cmd.ErrOrStderr(), flags)

	// Step 1: Merge config file defaults with explicitly set flags.
	opts, err := resolveOptions(cmd, flags, logger)
	if err != nil {
		return err
	}

	// Step 2: Load the wordlist once for the whole run.
	words, name, err := loadWords(opts, logger)
	if err != nil {
		return err
	}
	logger.Debug("loaded wordlist", "wordlist", name, "count", len(words))

	out := cmd.OutOrStdout()
	switch {
	case flags.printWords:
		return printWordlist(out, flags.jsonOutput, name, words)
	case flags.printStats:
		return printStatistics(out, flags.jsonOutput, name, wordlist.ComputeStatistics(words))
	}

	// Step 3: Check the request before generating anything, so an
	// impossible length produces no partial output.
	req := model.GenerationRequest{
		Words:     words,
		Length:    opts.Length,
		Separator: opts.Separator,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	// Step 4: Generate every passphrase, then print them all.
	passphrases, err := generateAll(req, opts.Number)
	if err != nil {
		return err
	}
	logger.Debug("generated passphrases", "number", len(passphrases), "length", req.Length)

	if flags.jsonOutput {
		return printPassphrasesJSON(out, passphrases)
	}
	printPassphrasesText(out, newPainter(opts.colour.Enabled(isTerminal(out))), passphrases)
	return nil
}

// resolveOptions loads the config file and applies every flag the user set
// explicitly on top of it. Config file problems exit with ExitConfigError;
// bad flag values exit with ExitUsageError.
func resolveOptions(cmd *cobra.Command, flags *rootFlags, logger *slog.Logger) (options, error) {
	path := flags.configPath
	explicit := cmd.Flags().Changed("config")
	if !explicit {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			logger.Debug("no user config directory, using defaults", "err", err)
		}
		path = defaultPath
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path, explicit)
		if err != nil {
			return options{}, model.WrapCLIError(model.ExitConfigError, "failed to load configuration", err)
		}
		cfg = loaded
		logger.Debug("resolved configuration", "path", path)
	}

	changed := cmd.Flags().Changed
	if changed("length") {
		if flags.length < 0 {
			return options{}, model.NewCLIError(model.ExitUsageError,
				fmt.Sprintf("invalid length %d: must not be negative", flags.length))
		}
		cfg.Length = flags.length
	}
	if changed("number") {
		if flags.number < 0 {
			return options{}, model.NewCLIError(model.ExitUsageError,
				fmt.Sprintf("invalid number %d: must not be negative", flags.number))
		}
		cfg.Number = flags.number
	}
	if changed("separator") {
		cfg.Separator = flags.separator
	}
	if changed("colour") {
		cfg.Colour = flags.colour
	}
	if changed("wordlist") {
		cfg.Wordlist = flags.wordlist
		// An explicit built-in list overrides a file from the config.
		cfg.WordlistFile = ""
	}
	if changed("wordlist-file") {
		cfg.WordlistFile = flags.wordlistFile
	}

	colour, err := model.ParseColourMode(cfg.Colour)
	if err != nil {
		return options{}, model.WrapCLIError(model.ExitUsageError, "invalid --colour value", err)
	}
	if cfg.WordlistFile == "" {
		if _, err := wordlist.ParseVariant(cfg.Wordlist); err != nil {
			return options{}, model.WrapCLIError(model.ExitUsageError, "invalid --wordlist value", err)
		}
	}

	return options{Config: cfg, colour: colour, wordlistChosen: changed("wordlist")}, nil
}

// loadWords returns the configured wordlist and a display name for it.
//
// When the default list is missing from this build and --wordlist was not
// given, the fallback list is used instead; an explicit --wordlist eff-large
// still fails.
func loadWords(opts options, logger *slog.Logger) ([]string, string, error) {
	cfg := opts.Config
	if cfg.WordlistFile != "" {
		words, err := wordlist.Load(cfg.WordlistFile)
		if err != nil {
			return nil, "", model.WrapCLIError(model.ExitWordlistError, "failed to load wordlist", err)
		}
		return words, cfg.WordlistFile, nil
	}

	variant, err := wordlist.ParseVariant(cfg.Wordlist)
	if err != nil {
		return nil, "", model.WrapCLIError(model.ExitUsageError, "invalid --wordlist value", err)
	}
	if !opts.wordlistChosen && !wordlist.Embedded(variant) {
		fallback := wordlist.FallbackVariant
		logger.Warn("wordlist not embedded in this build, using fallback",
			"wordlist", variant, "fallback", fallback)
		variant = fallback
	}
	words, err := wordlist.Builtin(variant)
	if err != nil {
		return nil, "", model.WrapCLIError(model.ExitWordlistError, "failed to load wordlist", err)
	}
	return words, variant.Description(), nil
}

// generateAll draws number passphrases from a single OS-backed source.
// req must already have passed Validate.
//
// The source panics with *sampler.EntropyError if the OS generator fails
// after it was opened; that panic is turned into ExitEntropyFailure here.
// Nothing has been printed at that point.
func generateAll(req model.GenerationRequest, number int) (passphrases []string, err error) {
	src, err := sampler.NewOSSource()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitEntropyFailure, "random generator unavailable", err)
	}

	defer func() {
		if r := recover(); r != nil {
			entropyErr, ok := r.(*sampler.EntropyError)
			if !ok {
				panic(r)
			}
			passphrases = nil
			err = model.WrapCLIError(model.ExitEntropyFailure, "random generator failed", entropyErr)
		}
	}()

	passphrases = make([]string, 0, number)
	for i := 0; i < number; i++ {
		p, err := sampler.GeneratePassword(src, req.Words, req.Length, req.Separator)
		if err != nil {
			return nil, fmt.Errorf("failed to generate passphrase: %w", err)
		}
		passphrases = append(passphrases, p)
	}
	return passphrases, nil
}
