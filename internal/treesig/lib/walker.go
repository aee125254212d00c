package lib

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"runtime"
	"sync"
	"time"

	"github.com/denormal/go-gitignore"
	"github.com/sourcegraph/conc/pool"

	"github.com/averlee/treesig/internal/treesig/types"
)

// WalkOptions controls a single traversal. The zero value is valid.
type WalkOptions struct {
	// Jobs bounds the worker pool used to hash file content. Zero means
	// one worker per CPU.
	Jobs int

	// Ignore optionally filters entries with gitignore-syntax patterns, on
	// top of the unconditional MetadataDirName exclusion. Must be nil for a
	// hash that matches the external tool's.
	Ignore gitignore.GitIgnore
}

// HashFS computes the root tree hash of fsys: every regular file becomes a
// blob, every directory a tree embedding the hashes of its children,
// bottom-up to a single 40-character lowercase hex digest. Symbolic links
// and other non-regular entries are skipped. The traversal holds no state
// between invocations; the result is a pure function of fsys at call time.
func HashFS(ctx context.Context, fsys fs.FS, opts WalkOptions) (string, error) {
	entries, err := ListFS(ctx, fsys, opts)
	if err != nil {
		return "", err
	}
	return HashTree(entries).Hex(), nil
}

// ListFS computes the canonically sorted, fully hashed entries of the root
// directory of fsys. HashTree over the result yields the same digest HashFS
// returns.
func ListFS(ctx context.Context, fsys fs.FS, opts WalkOptions) ([]types.TreeEntry, error) {
	info, err := fs.Stat(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPathNotFound, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, info.Name())
	}

	w, err := newWalker(ctx, fsys, opts)
	if err != nil {
		return nil, err
	}
	return w.treeEntries(ctx, ".")
}

// walker carries the per-invocation traversal state: the content source,
// the optional extra exclusions, and the blob hashes precomputed by the
// worker pool. Nothing survives the invocation.
type walker struct {
	fsys   fs.FS
	ignore gitignore.GitIgnore
	blobs  map[string]types.Hash
}

// newWalker runs the first two phases of the traversal: collect every
// regular file, then hash all of them on a bounded worker pool. The tree is
// assembled afterwards from per-directory listings, so the hashing order
// here has no effect on the result.
func newWalker(ctx context.Context, fsys fs.FS, opts WalkOptions) (*walker, error) {
	w := &walker{fsys: fsys, ignore: opts.Ignore}

	files, err := w.collectFiles(ctx)
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	start := time.Now()
	if err := w.hashFilesConcurrently(ctx, files, jobs); err != nil {
		return nil, err
	}
	slog.Debug("hashed file content",
		slog.Int("files", len(files)),
		slog.Int("jobs", jobs),
		slog.Duration("elapsed", time.Since(start)))

	return w, nil
}

// collectFiles walks the tree once and returns the paths of all regular
// files to be hashed, applying the metadata-directory exclusion and any
// extra ignore patterns. Exclusions must apply here too: an unreadable file
// inside an excluded directory must not abort the computation.
func (w *walker) collectFiles(ctx context.Context) ([]string, error) {
	var files []string

	err := fs.WalkDir(w.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if p == "." {
			return nil
		}

		if d.IsDir() && d.Name() == MetadataDirName {
			return fs.SkipDir
		}
		if Excluded(w.ignore, p, d.IsDir()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// hashFilesConcurrently fans blob hashing out over a bounded pool and
// records the results keyed by path. Any unreadable file cancels the pool
// and fails the whole computation.
func (w *walker) hashFilesConcurrently(ctx context.Context, files []string, jobs int) error {
	w.blobs = make(map[string]types.Hash, len(files))

	var mu sync.Mutex
	p := pool.New().WithMaxGoroutines(jobs).WithContext(ctx).WithCancelOnError()

	for _, file := range files {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sum, err := HashBlobFile(w.fsys, file)
			if err != nil {
				return err
			}
			mu.Lock()
			w.blobs[file] = sum
			mu.Unlock()
			return nil
		})
	}

	return p.Wait()
}

// treeEntries lists one directory, resolves every child to a (mode, name,
// hash) triple — recursing post-order into subdirectories — and returns the
// children in canonical sorted order.
func (w *walker) treeEntries(ctx context.Context, dir string) ([]types.TreeEntry, error) {
	dirEntries, err := fs.ReadDir(w.fsys, dir)
	if err != nil {
		return nil, err
	}

	entries := make([]types.TreeEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		childPath := path.Join(dir, entry.Name())
		if entry.IsDir() && entry.Name() == MetadataDirName {
			continue
		}
		if Excluded(w.ignore, childPath, entry.IsDir()) {
			continue
		}

		switch {
		case entry.IsDir():
			children, err := w.treeEntries(ctx, childPath)
			if err != nil {
				return nil, err
			}
			entries = append(entries, types.TreeEntry{
				Mode: types.ModeDir,
				Name: entry.Name(),
				Hash: HashTree(children),
			})

		case entry.Type().IsRegular():
			sum, ok := w.blobs[childPath]
			if !ok {
				// The file appeared between collection and assembly. Hash it
				// inline; the result stays a snapshot of the tree as read now.
				sum, err = HashBlobFile(w.fsys, childPath)
				if err != nil {
					return nil, err
				}
			}
			entries = append(entries, types.TreeEntry{
				Mode: ResolveEntryMode(entry),
				Name: entry.Name(),
				Hash: sum,
			})

		default:
			// Symbolic links and other special files carry no defined
			// encoding here and are not part of the fingerprint.
			slog.Debug("skipping non-regular entry", slog.String("path", childPath))
		}
	}

	SortTreeEntries(entries)
	return entries, nil
}
