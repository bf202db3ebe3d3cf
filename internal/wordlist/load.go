package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a custom wordlist file and validates it.
//
// The file holds one entry per line, either a bare word or a diceware line
// ("<dice digits> <word>"). Blank lines and lines starting with '#' are
// skipped.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer func() { _ = f.Close() }()

	words, err := ParseDiceware(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := Validate(words); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// ParseDiceware extracts the words of a wordlist, dropping dice numbers.
//
// A line with two fields is accepted only when the first field is a dice
// roll (digits 1-6); anything else with embedded whitespace is rejected,
// since the word itself would contain whitespace.
func ParseDiceware(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch {
		case len(fields) == 1:
			words = append(words, fields[0])
		case len(fields) == 2 && isDiceRoll(fields[0]):
			words = append(words, fields[1])
		default:
			return nil, fmt.Errorf("%w: line %d: %q is not a single word", ErrIntegrity, lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wordlist: %w", err)
	}
	return words, nil
}

func isDiceRoll(s string) bool {
	for _, r := range s {
		if r < '1' || r > '6' {
			return false
		}
	}
	return s != ""
}

// WriteWords writes one word per line.
func WriteWords(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
