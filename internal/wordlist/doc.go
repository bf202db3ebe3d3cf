// Package wordlist provides the candidate words passphrases are drawn from.
//
// Two lists are compiled into the binary:
//   - eff-large: the EFF large diceware list (July 2016, 7776 words). The
//     file is downloaded and SHA-256 verified at packaging time by
//     `go generate ./...` and embedded from data/.
//   - bip39-english: the BIP-39 English mnemonic list (2048 words), taken
//     from github.com/tyler-smith/go-bip39.
//
// Custom lists can be loaded from disk with Load, which accepts plain
// one-word-per-line files as well as numbered diceware files.
//
// Every list must satisfy the same invariants: at least one word, no empty
// entries, no whitespace inside an entry and no duplicates. Built-in lists are
// checked by tests; user files are checked at load time by Validate.
package wordlist
