// Package cli — version.go builds the text shown after the version line
// of --version: a summary of the default wordlist and license information.
package cli

import (
	"fmt"

	"github.com/shinji-kodama/xkpwgen/internal/wordlist"
)

const licenseText = `wordlist license CC BY 3.0 US: <http://creativecommons.org/licenses/by/3.0/us/>.

xkpwgen license GPLv3+: GNU GPL version 3 or later <http://gnu.org/licenses/gpl.html>.
xkpwgen is free software: you are free to change and redistribute it.
There is NO WARRANTY, to the extent permitted by law.
`

// versionDetails is appended to the version template. It must not contain
// template actions.
func versionDetails() string {
	return fmt.Sprintf("\n%s\n\n%s", wordlistSummary(wordlist.DefaultVariant), licenseText)
}

// wordlistSummary describes a built-in list, e.g.
// "EFF long wordlist July 2016: 7776 words (min length 3, max length 9)".
func wordlistSummary(v wordlist.Variant) string {
	words, err := wordlist.Builtin(v)
	if err != nil {
		return fmt.Sprintf("%s: not available in this build", v.Description())
	}
	stats := wordlist.ComputeStatistics(words)
	return fmt.Sprintf("%s: %d words (min length %d, max length %d)",
		v.Description(), stats.Count, stats.MinLength, stats.MaxLength)
}
