// Package commands contains the command-line operations for the treesig application.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/denormal/go-gitignore"

	"github.com/averlee/treesig/internal/treesig/lib"
)

// Options carries the flags shared by the tree-level operations.
type Options struct {
	// Jobs bounds the blob-hashing worker pool. Zero means one per CPU.
	Jobs int
	// IgnoreFile optionally names a gitignore-syntax pattern file with
	// extra exclusions. When set, the computed hash no longer matches the
	// external tool's; default runs load nothing.
	IgnoreFile string
}

// Hash computes the root tree hash of targetDirectory and returns it as a
// 40-character lowercase hex string.
func Hash(ctx context.Context, targetDirectory string, opts Options) (string, error) {
	dir, err := resolveDir(targetDirectory)
	if err != nil {
		return "", err
	}

	matcher, err := loadMatcher(opts.IgnoreFile)
	if err != nil {
		return "", err
	}

	slog.Debug("hashing directory tree", slog.String("dir", dir))
	return lib.HashFS(ctx, os.DirFS(dir), lib.WalkOptions{Jobs: opts.Jobs, Ignore: matcher})
}

// resolveDir validates the starting path. A missing path and a non-directory
// path are distinct, reportable conditions; everything else about the
// traversal is handled further down.
func resolveDir(targetDirectory string) (string, error) {
	absTargetPath, err := filepath.Abs(targetDirectory)
	if err != nil {
		return "", fmt.Errorf("could not resolve absolute path for %s: %w", targetDirectory, err)
	}

	info, err := os.Stat(absTargetPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", lib.ErrPathNotFound, absTargetPath)
	}
	if err != nil {
		return "", fmt.Errorf("could not stat %s: %w", absTargetPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", lib.ErrNotADirectory, absTargetPath)
	}
	return absTargetPath, nil
}

func loadMatcher(ignoreFile string) (gitignore.GitIgnore, error) {
	if ignoreFile == "" {
		return nil, nil
	}
	return lib.LoadIgnoreFile(ignoreFile)
}
