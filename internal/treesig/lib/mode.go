package lib

import (
	"io/fs"
	"log/slog"

	"github.com/averlee/treesig/internal/treesig/types"
)

// ResolveMode classifies a regular file from its permission bits: executable
// if any of the owner/group/other execute bits is set, regular otherwise.
// Directories never pass through here; they always carry types.ModeDir.
func ResolveMode(info fs.FileInfo) string {
	if info.Mode().Perm()&0o111 != 0 {
		return types.ModeExecutable
	}
	return types.ModeRegular
}

// ResolveEntryMode resolves the mode tag for a directory listing entry. If
// the permission bits cannot be read (for example the entry vanished between
// listing and stat), it falls back to the regular-file mode rather than
// failing the traversal. The substitution is logged so it is visible with -v.
func ResolveEntryMode(entry fs.DirEntry) string {
	info, err := entry.Info()
	if err != nil {
		slog.Warn("could not read permission bits, assuming regular file",
			slog.String("name", entry.Name()),
			slog.Any("error", err))
		return types.ModeRegular
	}
	return ResolveMode(info)
}
