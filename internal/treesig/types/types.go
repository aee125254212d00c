package types

import "encoding/hex"

// Mode tags are the fixed octal strings git writes into tree objects.
// Note that the directory mode is encoded as the five-character "40000";
// the "040000" form only ever appears in ls-tree style display output.
const (
	ModeRegular    = "100644"
	ModeExecutable = "100755"
	ModeDir        = "40000"
)

// HashSize is the size in bytes of a raw SHA-1 digest.
const HashSize = 20

// Hash is a raw 160-bit object digest.
type Hash [HashSize]byte

// Hex returns the lowercase hexadecimal form of the hash.
func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}

// TreeEntry is one child of a directory, annotated with its computed
// content identity. The Hash is always fully computed before the entry is
// handed to the tree encoder (strict bottom-up dependency).
type TreeEntry struct {
	Mode string
	Name string
	Hash Hash
}

// IsDir reports whether the entry refers to a subtree.
func (e TreeEntry) IsDir() bool {
	return e.Mode == ModeDir
}

// Type returns the object kind for display purposes, matching git ls-tree.
func (e TreeEntry) Type() string {
	if e.IsDir() {
		return "tree"
	}
	return "blob"
}
