// Package lib contains the core, reusable services for the treesig application.
package lib

import "errors"

var (
	// ErrPathNotFound is returned when the starting path resolves to nothing on disk.
	ErrPathNotFound = errors.New("treesig: path not found")

	// ErrNotADirectory is returned when the starting path exists but is not a directory.
	ErrNotADirectory = errors.New("treesig: not a directory")

	// ErrUnreadableFile is returned when a regular file's content cannot be read
	// mid-traversal. This is fatal for the whole computation: silently skipping
	// or substituting the file would produce a valid-looking but wrong hash.
	ErrUnreadableFile = errors.New("treesig: unreadable file")
)
