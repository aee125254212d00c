package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/averlee/treesig/internal/treesig/lib"
	"github.com/averlee/treesig/internal/treesig/types"
)

// List computes the tree fresh and returns the fully hashed, canonically
// sorted entries of the directory's root level.
func List(ctx context.Context, targetDirectory string, opts Options) ([]types.TreeEntry, error) {
	dir, err := resolveDir(targetDirectory)
	if err != nil {
		return nil, err
	}

	matcher, err := loadMatcher(opts.IgnoreFile)
	if err != nil {
		return nil, err
	}

	return lib.ListFS(ctx, os.DirFS(dir), lib.WalkOptions{Jobs: opts.Jobs, Ignore: matcher})
}

// PrintEntries writes entries in git ls-tree format:
// "<mode> <type> <hash>\t<name>". The directory mode is padded to six
// characters for display; the five-character form exists only on the wire.
func PrintEntries(w io.Writer, entries []types.TreeEntry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s %s\t%s\n", displayMode(e.Mode), e.Type(), e.Hash.Hex(), e.Name)
	}
}

func displayMode(mode string) string {
	for len(mode) < 6 {
		mode = "0" + mode
	}
	return mode
}
