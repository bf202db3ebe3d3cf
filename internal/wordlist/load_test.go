package wordlist

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseDiceware(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "diceware numbered lines",
			input: "11111\tabacus\n11112\tabdomen\n11113\tabdominal\n",
			want:  []string{"abacus", "abdomen", "abdominal"},
		},
		{
			name:  "plain words",
			input: "ant\nbee\ncat",
			want:  []string{"ant", "bee", "cat"},
		},
		{
			name:  "windows line endings, blanks and comments",
			input: "# my list\r\nant\r\n\r\n  bee  \r\n",
			want:  []string{"ant", "bee"},
		},
		{
			name:  "multibyte words",
			input: "1111 grüße\n1112 żółw\n",
			want:  []string{"grüße", "żółw"},
		},
		{
			name:    "two words without dice roll",
			input:   "ant\nbee hive\n",
			wantErr: true,
		},
		{
			name:    "number outside dice range",
			input:   "11117 ant\n",
			wantErr: true,
		},
		{
			name:    "three fields",
			input:   "11111 ant bee\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDiceware(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIntegrity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, "words.txt", "ant\nbee\ncat\ndog\nelk\n")
		words, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"ant", "bee", "cat", "dog", "elk"}, words)
	})

	t.Run("duplicate entries rejected", func(t *testing.T) {
		path := writeFile(t, "dups.txt", "ant\nbee\nant\n")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrIntegrity)
		assert.Contains(t, err.Error(), "dups.txt")
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("empty file rejected", func(t *testing.T) {
		path := writeFile(t, "empty.txt", "# nothing here\n\n")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrIntegrity)
		assert.Contains(t, err.Error(), "empty list")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

// TestWriteWords_RoundTrip writes a list in the embedded format and parses
// it back.
func TestWriteWords_RoundTrip(t *testing.T) {
	words := []string{"ant", "bee", "cat"}
	var buf bytes.Buffer
	require.NoError(t, WriteWords(&buf, words))
	assert.Equal(t, "ant\nbee\ncat\n", buf.String())

	parsed, err := ParseDiceware(&buf)
	require.NoError(t, err)
	assert.Equal(t, words, parsed)
}
