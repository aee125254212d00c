package lib

import (
	"crypto/sha1"
	"fmt"
	"io"
	"io/fs"

	"github.com/averlee/treesig/internal/treesig/types"
)

// HashBlob computes the canonical blob hash of in-memory content: the SHA-1
// of "blob ", the decimal byte length, a NUL separator, then the raw bytes.
func HashBlob(content []byte) types.Hash {
	h := sha1.New()
	fmt.Fprintf(h, "blob %d\x00", len(content))
	h.Write(content)

	var sum types.Hash
	copy(sum[:], h.Sum(nil))
	return sum
}

// HashBlobReader computes the same digest incrementally from a reader whose
// total length is known up front. The header must carry the exact content
// length, so the caller declares size and the stream is verified against it.
// This keeps memory flat for files larger than RAM.
func HashBlobReader(r io.Reader, size int64) (types.Hash, error) {
	h := sha1.New()
	fmt.Fprintf(h, "blob %d\x00", size)

	n, err := io.Copy(h, r)
	if err != nil {
		return types.Hash{}, err
	}
	if n != size {
		// The file changed length between stat and read. The declared size is
		// already baked into the header, so the digest would be wrong.
		return types.Hash{}, fmt.Errorf("content length changed during read: declared %d, read %d", size, n)
	}

	var sum types.Hash
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// HashBlobFile opens a single file in fsys and streams its content through
// the blob hasher. Any open, stat, or read failure is wrapped in
// ErrUnreadableFile and must abort the caller's traversal.
func HashBlobFile(fsys fs.FS, path string) (types.Hash, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return types.Hash{}, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return types.Hash{}, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, path, err)
	}

	sum, err := HashBlobReader(file, info.Size())
	if err != nil {
		return types.Hash{}, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, path, err)
	}
	return sum, nil
}
