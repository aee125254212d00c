package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averlee/treesig/internal/treesig/commands"
	"github.com/averlee/treesig/internal/treesig/lib"
)

func TestHash(t *testing.T) {
	testDir := setupTestDir(t)

	t.Run("golden root digest", func(t *testing.T) {
		hash, err := commands.Hash(context.Background(), testDir, commands.Options{})

		require.NoError(t, err)
		assert.Equal(t, goldenRootHash, hash)
	})

	t.Run("repeat invocations agree", func(t *testing.T) {
		first, err := commands.Hash(context.Background(), testDir, commands.Options{})
		require.NoError(t, err)
		second, err := commands.Hash(context.Background(), testDir, commands.Options{})
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("single worker gives the same digest", func(t *testing.T) {
		hash, err := commands.Hash(context.Background(), testDir, commands.Options{Jobs: 1})

		require.NoError(t, err)
		assert.Equal(t, goldenRootHash, hash)
	})

	t.Run("metadata directory changes are invisible", func(t *testing.T) {
		writeFile(t, filepath.Join(testDir, ".git", "HEAD"), "ref: refs/heads/main\n", 0o644)

		hash, err := commands.Hash(context.Background(), testDir, commands.Options{})

		require.NoError(t, err)
		assert.Equal(t, goldenRootHash, hash)
	})
}

func TestHashPathErrors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := commands.Hash(context.Background(), filepath.Join(t.TempDir(), "nope"), commands.Options{})

		require.ErrorIs(t, err, lib.ErrPathNotFound)
	})

	t.Run("path is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain.txt")
		writeFile(t, file, "not a directory\n", 0o644)

		_, err := commands.Hash(context.Background(), file, commands.Options{})

		require.ErrorIs(t, err, lib.ErrNotADirectory)
	})
}

func TestHashIgnoreFile(t *testing.T) {
	testDir := setupTestDir(t)

	baseline, err := commands.Hash(context.Background(), testDir, commands.Options{})
	require.NoError(t, err)

	// Extra noise plus an ignore file that excludes it: the digest must
	// return to the baseline only when the patterns are loaded.
	writeFile(t, filepath.Join(testDir, "debug.log"), "noise\n", 0o644)

	ignorePath := filepath.Join(t.TempDir(), "patterns")
	writeFile(t, ignorePath, "*.log\n", 0o644)

	noisy, err := commands.Hash(context.Background(), testDir, commands.Options{})
	require.NoError(t, err)
	assert.NotEqual(t, baseline, noisy)

	filtered, err := commands.Hash(context.Background(), testDir, commands.Options{IgnoreFile: ignorePath})
	require.NoError(t, err)
	assert.Equal(t, baseline, filtered)

	t.Run("missing ignore file is an error", func(t *testing.T) {
		_, err := commands.Hash(context.Background(), testDir, commands.Options{
			IgnoreFile: filepath.Join(t.TempDir(), "missing"),
		})
		require.Error(t, err)
	})
}

func TestHashTimestampInsensitivity(t *testing.T) {
	testDir := setupTestDir(t)

	baseline, err := commands.Hash(context.Background(), testDir, commands.Options{})
	require.NoError(t, err)

	// Touch every fixture file; only content and modes may matter.
	for _, name := range []string{"a.txt", "run.sh", filepath.Join("sub", "b.txt")} {
		path := filepath.Join(testDir, name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		newTime := info.ModTime().Add(-48 * time.Hour)
		require.NoError(t, os.Chtimes(path, newTime, newTime))
	}

	hash, err := commands.Hash(context.Background(), testDir, commands.Options{})
	require.NoError(t, err)
	assert.Equal(t, baseline, hash)
}
