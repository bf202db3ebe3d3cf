package wordlist

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/tyler-smith/go-bip39/wordlists"
)

//go:generate go run ../../cmd/fetch-wordlist --output data/eff_large_wordlist.txt

// The EFF list is distributed under CC BY 3.0 US and is fetched at packaging
// time rather than committed; see cmd/fetch-wordlist. The data directory
// always holds a README so the embed pattern matches even before the
// download has run.
//
//go:embed data
var embedded embed.FS

const effLargePath = "data/eff_large_wordlist.txt"

func loadEFFLarge() ([]string, error) {
	data, err := fs.ReadFile(embedded, effLargePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s (run `go generate ./...` before building)", ErrNotEmbedded, EFFLarge)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", EFFLarge, err)
	}
	words, err := ParseDiceware(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", EFFLarge, err)
	}
	return words, nil
}

// loadBIP39English reads the list from go-bip39, which verifies its CRC32
// checksum at init.
func loadBIP39English() ([]string, error) {
	return wordlists.English, nil
}
