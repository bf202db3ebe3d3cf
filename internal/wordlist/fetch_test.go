package wordlist

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleList = "11111\tabacus\n11112\tabdomen\n11113\tabdominal\n"

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func newListServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	t.Run("checksum matches", func(t *testing.T) {
		srv := newListServer(t, http.StatusOK, sampleList)
		data, err := Fetch(context.Background(), srv.Client(), srv.URL, sha256Hex(sampleList))
		require.NoError(t, err)
		assert.Equal(t, sampleList, string(data))
	})

	t.Run("uppercase digest accepted", func(t *testing.T) {
		srv := newListServer(t, http.StatusOK, sampleList)
		_, err := Fetch(context.Background(), srv.Client(), srv.URL, strings.ToUpper(sha256Hex(sampleList)))
		assert.NoError(t, err)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		srv := newListServer(t, http.StatusOK, sampleList+"11114\tintruder\n")
		_, err := Fetch(context.Background(), srv.Client(), srv.URL, sha256Hex(sampleList))
		assert.ErrorIs(t, err, ErrChecksumMismatch)
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := newListServer(t, http.StatusNotFound, "not found")
		_, err := Fetch(context.Background(), srv.Client(), srv.URL, sha256Hex("not found"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := newListServer(t, http.StatusOK, sampleList)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Fetch(ctx, srv.Client(), srv.URL, sha256Hex(sampleList))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
