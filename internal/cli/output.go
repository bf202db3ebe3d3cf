// Package cli — output.go renders passphrases, wordlists and statistics as
// text or JSON.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/moby/term"
	"github.com/morikuni/aec"

	"github.com/shinji-kodama/xkpwgen/internal/wordlist"
)

// painter colours successive lines in alternating styles so that adjacent
// passphrases are easy to tell apart. The zero value prints plain text.
type painter struct {
	styles []aec.ANSI
}

// newPainter returns a cyan/magenta painter when enabled.
func newPainter(enabled bool) painter {
	if !enabled {
		return painter{}
	}
	return painter{styles: []aec.ANSI{aec.CyanF, aec.MagentaF}}
}

// paint styles the text of line number lineno.
func (p painter) paint(lineno int, s string) string {
	if len(p.styles) == 0 {
		return s
	}
	return p.styles[lineno%len(p.styles)].Apply(s)
}

// isTerminal reports whether w is attached to a terminal. Writers that are
// not files (buffers in tests, pipes wrapped by cobra) are not terminals.
func isTerminal(w io.Writer) bool {
	_, ok := term.GetFdInfo(w)
	return ok
}

// printPassphrasesText prints one passphrase per line.
func printPassphrasesText(w io.Writer, p painter, passphrases []string) {
	for i, pw := range passphrases {
		fmt.Fprintln(w, p.paint(i, pw))
	}
}

// printPassphrasesJSON prints {"passphrases": [...]}.
func printPassphrasesJSON(w io.Writer, passphrases []string) error {
	type resultJSON struct {
		Passphrases []string `json:"passphrases"`
	}
	// Use an empty slice instead of nil so -n 0 prints [] rather than null.
	if passphrases == nil {
		passphrases = []string{}
	}
	return writeJSON(w, resultJSON{Passphrases: passphrases})
}

// printWordlist prints the list one word per line, or as JSON.
func printWordlist(w io.Writer, jsonOutput bool, name string, words []string) error {
	if jsonOutput {
		type resultJSON struct {
			Wordlist string   `json:"wordlist"`
			Words    []string `json:"words"`
		}
		return writeJSON(w, resultJSON{Wordlist: name, Words: words})
	}
	return wordlist.WriteWords(w, words)
}

// printStatistics prints the summary of a wordlist.
//
// The text format is:
//
//	EFF long wordlist July 2016: 7776 words
//	  min length:     3
//	  max length:     9
//	  average length: 7.00
//	  median length:  7
func printStatistics(w io.Writer, jsonOutput bool, name string, stats wordlist.Statistics) error {
	if jsonOutput {
		type resultJSON struct {
			Wordlist   string              `json:"wordlist"`
			Statistics wordlist.Statistics `json:"statistics"`
		}
		return writeJSON(w, resultJSON{Wordlist: name, Statistics: stats})
	}

	_, err := fmt.Fprintf(w, "%s: %d words\n  min length:     %d\n  max length:     %d\n  average length: %.2f\n  median length:  %d\n",
		name, stats.Count, stats.MinLength, stats.MaxLength, stats.AverageLength, stats.MedianLength)
	return err
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
