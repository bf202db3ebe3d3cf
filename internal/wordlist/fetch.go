package wordlist

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// EFFLargeURL is where the EFF publishes the large diceware list.
	EFFLargeURL = "https://www.eff.org/files/2016/07/18/eff_large_wordlist.txt"

	// EFFLargeSHA256 is the digest of the file served at EFFLargeURL.
	EFFLargeSHA256 = "addd35536511597a02fa0a9ff1e5284677b8883b83e986e43f15a3db996b903e"

	// maxDownloadBytes bounds the response body; the EFF file is ~105 KB.
	maxDownloadBytes = 1 << 20
)

// ErrChecksumMismatch is returned when downloaded data does not match the
// pinned digest.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// Fetch downloads url and verifies its SHA-256 digest against wantSHA256
// (hex). It is a packaging-time helper; the CLI never touches the network.
func Fetch(ctx context.Context, client *http.Client, url, wantSHA256 string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Close = true

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	if len(body) > maxDownloadBytes {
		return nil, fmt.Errorf("%s is larger than %d bytes", url, maxDownloadBytes)
	}

	sum := sha256.Sum256(body)
	got := hex.EncodeToString(sum[:])
	if !strings.EqualFold(got, wantSHA256) {
		return nil, fmt.Errorf("%w for %s: got %s, want %s", ErrChecksumMismatch, url, got, wantSHA256)
	}
	return body, nil
}
