package lib

import (
	"bytes"
	"crypto/sha1"
	"fmt"

	"github.com/averlee/treesig/internal/treesig/types"
)

// EncodeTree builds the canonical byte encoding of a tree object from
// entries already in canonical sorted order. Each entry contributes its
// mode string, a space, the raw name bytes, a NUL, then the raw 20-byte
// hash. The concatenation is prefixed with "tree ", its decimal byte
// length, and a NUL.
func EncodeTree(entries []types.TreeEntry) []byte {
	var body bytes.Buffer
	for _, e := range entries {
		body.WriteString(e.Mode)
		body.WriteByte(' ')
		body.WriteString(e.Name)
		body.WriteByte(0)
		body.Write(e.Hash[:])
	}

	var obj bytes.Buffer
	// The declared length must be exactly the body length. An off-by-one
	// here still yields a well-formed digest, just the wrong one.
	fmt.Fprintf(&obj, "tree %d\x00", body.Len())
	obj.Write(body.Bytes())
	return obj.Bytes()
}

// HashTree encodes the sorted entries and returns the SHA-1 of the result.
// Zero entries is valid and hashes to the fixed empty-tree constant.
func HashTree(entries []types.TreeEntry) types.Hash {
	return types.Hash(sha1.Sum(EncodeTree(entries)))
}
