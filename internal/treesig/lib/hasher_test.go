package lib

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averlee/treesig/internal/treesig/types"
)

// Well-known canonical blob digests, verifiable with `git hash-object`.
const (
	helloBlobHash = "ce013625030ba8dba906f756967f9e9ca394464a" // "hello\n"
	emptyBlobHash = "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391" // empty content
)

// mustHash decodes a 40-character hex digest into a raw hash for fixtures.
func mustHash(t *testing.T, hexDigest string) types.Hash {
	t.Helper()
	raw, err := hex.DecodeString(hexDigest)
	require.NoError(t, err)
	require.Len(t, raw, types.HashSize)

	var h types.Hash
	copy(h[:], raw)
	return h
}

func TestHashBlob(t *testing.T) {
	testCases := []struct {
		name     string
		content  []byte
		expected string
	}{
		{name: "hello with newline", content: []byte("hello\n"), expected: helloBlobHash},
		{name: "empty content", content: []byte{}, expected: emptyBlobHash},
		{name: "nil content", content: nil, expected: emptyBlobHash},
		{name: "binary content with NUL bytes", content: []byte{0x00, 0xff, 0x00, 0x10}, expected: "184dae8fabb893fe0f663f7f097b7b03b7ee2fbb"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HashBlob(tc.content).Hex())
		})
	}
}

func TestHashBlobReader(t *testing.T) {
	t.Run("matches in-memory hashing", func(t *testing.T) {
		content := "some file content\nwith two lines\n"

		sum, err := HashBlobReader(strings.NewReader(content), int64(len(content)))

		require.NoError(t, err)
		assert.Equal(t, HashBlob([]byte(content)).Hex(), sum.Hex())
	})

	t.Run("declared size mismatch is an error", func(t *testing.T) {
		// The declared length is baked into the header before the content is
		// read, so a shrunk stream must fail rather than produce a digest.
		_, err := HashBlobReader(strings.NewReader("short"), 100)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "length changed")
	})
}

func TestHashBlobFile(t *testing.T) {
	t.Run("hashes file content from disk", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello\n"), 0o644))

		sum, err := HashBlobFile(os.DirFS(dir), "a.txt")

		require.NoError(t, err)
		assert.Equal(t, helloBlobHash, sum.Hex())
	})

	t.Run("missing file is an unreadable-file error", func(t *testing.T) {
		_, err := HashBlobFile(os.DirFS(t.TempDir()), "does_not_exist.txt")

		require.ErrorIs(t, err, ErrUnreadableFile)
	})
}
