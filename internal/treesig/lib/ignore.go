package lib

import (
	"fmt"
	"os"
	"strings"

	"github.com/denormal/go-gitignore"
)

// MetadataDirName is the version-control bookkeeping directory excluded
// unconditionally at every traversal level. Hashing it would make the
// fingerprint depend on VCS state rather than tracked content. This is a
// fixed constant of the ecosystem being fingerprinted, not configurable.
const MetadataDirName = ".git"

// LoadIgnoreFile reads a gitignore-syntax pattern file and compiles it into
// a matcher for the walker's optional extra exclusions. Extra exclusions
// change the computed hash, so they are never loaded implicitly; the caller
// opts in with an explicit path.
func LoadIgnoreFile(path string) (gitignore.GitIgnore, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read ignore file %s: %w", path, err)
	}
	return CompileIgnorePatterns(string(content)), nil
}

// CompileIgnorePatterns compiles raw gitignore-syntax text into a matcher.
// Comments and blank lines are stripped, and Windows-style backslashes are
// normalized to forward slashes before compilation.
func CompileIgnorePatterns(raw string) gitignore.GitIgnore {
	var patterns []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		patterns = append(patterns, strings.ReplaceAll(trimmed, "\\", "/"))
	}

	matcher := gitignore.New(
		strings.NewReader(strings.Join(patterns, "\n")),
		".",
		// The error handler tells the parser to continue on error.
		func(err gitignore.Error) bool { return false },
	)

	// If the matcher fails to compile, return a "null" matcher that ignores nothing.
	if matcher == nil {
		return gitignore.New(strings.NewReader(""), ".", nil)
	}
	return matcher
}

// Excluded reports whether the entry at relPath (slash-separated, relative
// to the traversal root) should be skipped by the given matcher. A nil
// matcher excludes nothing.
func Excluded(matcher gitignore.GitIgnore, relPath string, isDir bool) bool {
	if matcher == nil {
		return false
	}
	match := matcher.Relative(relPath, isDir)
	if match == nil {
		return false
	}
	return match.Ignore()
}
