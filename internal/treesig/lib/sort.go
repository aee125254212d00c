package lib

import (
	"sort"

	"github.com/averlee/treesig/internal/treesig/types"
)

// sortKey returns the byte sequence an entry is ordered by. Directories are
// compared as if their name carried a trailing path separator, because that
// is how their children's paths continue. A locale or plain string sort is
// not equivalent: a directory "lib" must sort after a file "lib.txt", since
// "lib/" > "lib." byte-wise.
func sortKey(e types.TreeEntry) string {
	if e.IsDir() {
		return e.Name + "/"
	}
	return e.Name
}

// entryLess is the canonical total order over the children of one directory:
// strict byte-by-byte comparison of the (suffixed) UTF-8 names. The first
// differing byte decides; a byte-wise prefix sorts before its extension.
// Go's built-in string comparison is exactly this bytewise rule.
func entryLess(a, b types.TreeEntry) bool {
	return sortKey(a) < sortKey(b)
}

// SortTreeEntries orders entries in place into canonical tree order. Sibling
// names are unique by filesystem guarantee, so the order is total.
func SortTreeEntries(entries []types.TreeEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entryLess(entries[i], entries[j])
	})
}
