// The _test suffix creates an external test package, so the commands are
// exercised through their public API only.
package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Root digest of the fixture built by setupTestDir, verified against
// `git write-tree` for the same content and modes.
const goldenRootHash = "f5bb430b82de3d2543a6b1c3b217bf2ba4a11046"

// setupTestDir builds the known-value directory tree on disk: a plain file,
// an executable, a subdirectory, and version-control metadata that must
// never influence the result. t.TempDir() handles cleanup.
func setupTestDir(t *testing.T) string {
	t.Helper()
	testDir := t.TempDir()

	writeFile(t, filepath.Join(testDir, "a.txt"), "hello\n", 0o644)
	writeFile(t, filepath.Join(testDir, "run.sh"), "#!/bin/sh\necho hi\n", 0o755)

	require.NoError(t, os.Mkdir(filepath.Join(testDir, "sub"), 0o755))
	writeFile(t, filepath.Join(testDir, "sub", "b.txt"), "world\n", 0o644)

	require.NoError(t, os.Mkdir(filepath.Join(testDir, ".git"), 0o755))
	writeFile(t, filepath.Join(testDir, ".git", "config"), "[core]\n", 0o644)

	return testDir
}

// writeFile writes content and then chmods explicitly, so the fixture's
// permission bits are exact regardless of the process umask.
func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	require.NoError(t, os.Chmod(path, perm))
}
