// Package main downloads the EFF large wordlist, verifies it against its
// pinned SHA-256 digest and writes it, one word per line, to the file that
// internal/wordlist embeds. It is run by `go generate ./...` and is not
// part of the installed binary.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/xkpwgen/internal/wordlist"
)

type fetchFlags struct {
	url     string
	sha256  string
	output  string
	timeout time.Duration
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	flags := &fetchFlags{}

	cmd := &cobra.Command{
		Use:           "fetch-wordlist",
		Short:         "Download and verify the EFF large wordlist",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.url, "url", wordlist.EFFLargeURL, "Where to download the wordlist from")
	f.StringVar(&flags.sha256, "sha256", wordlist.EFFLargeSHA256, "Expected SHA-256 digest of the download (hex)")
	f.StringVarP(&flags.output, "output", "o", "data/eff_large_wordlist.txt", "File to write the words to")
	f.DurationVar(&flags.timeout, "timeout", 30*time.Second, "HTTP timeout")

	return cmd
}

func run(ctx context.Context, flags *fetchFlags) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	client := &http.Client{Timeout: flags.timeout}
	logger.Info("downloading wordlist", "url", flags.url)
	data, err := wordlist.Fetch(ctx, client, flags.url, flags.sha256)
	if err != nil {
		return err
	}

	words, err := wordlist.ParseDiceware(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", flags.url, err)
	}
	if err := wordlist.Validate(words); err != nil {
		return fmt.Errorf("downloaded wordlist is unusable: %w", err)
	}
	if want := wordlist.EFFLarge.ExpectedCount(); len(words) != want {
		return fmt.Errorf("downloaded wordlist has %d words, want %d", len(words), want)
	}

	if err := os.MkdirAll(filepath.Dir(flags.output), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := wordlist.WriteWords(&buf, words); err != nil {
		return err
	}
	if err := os.WriteFile(flags.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", flags.output, err)
	}

	logger.Info("wrote wordlist", "path", flags.output, "count", len(words))
	return nil
}
