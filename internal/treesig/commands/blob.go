package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/averlee/treesig/internal/treesig/lib"
)

// Blob computes the canonical blob hash of a single file, the file-level
// analogue of Hash.
func Blob(targetFile string) (string, error) {
	absTargetPath, err := filepath.Abs(targetFile)
	if err != nil {
		return "", fmt.Errorf("could not resolve absolute path for %s: %w", targetFile, err)
	}

	info, err := os.Stat(absTargetPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", lib.ErrPathNotFound, absTargetPath)
	}
	if err != nil {
		return "", fmt.Errorf("could not stat %s: %w", absTargetPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory; blob hashing applies to files", absTargetPath)
	}

	sum, err := lib.HashBlobFile(os.DirFS(filepath.Dir(absTargetPath)), filepath.Base(absTargetPath))
	if err != nil {
		return "", err
	}
	return sum.Hex(), nil
}
