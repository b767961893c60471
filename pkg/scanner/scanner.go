// Package scanner walks a project tree and yields its regular files.
//
// The scanner never filters: every regular file under the root is
// yielded, including files inside directories an exclusion rule will
// later reject. Classification owns all filtering so that skip counts
// reflect the whole tree. Symlinks and other irregular entries are
// never followed and never yielded.
package scanner

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/packup/packup/pkg/errors"
	"github.com/packup/packup/pkg/filesystem"
	"github.com/packup/packup/pkg/logging"
	"github.com/packup/packup/pkg/types"
)

// WalkFunc receives one regular file per call. Returning an error aborts
// the walk and surfaces the error unchanged.
type WalkFunc func(entry types.FileEntry) error

// Scanner enumerates the regular files of a project tree.
type Scanner struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Scanner on the OS filesystem
func New() *Scanner {
	return NewWithFS(filesystem.NewOS())
}

// NewWithFS creates a Scanner on a custom filesystem
func NewWithFS(fsys types.FS) *Scanner {
	return &Scanner{
		fs:     fsys,
		logger: logging.GetLogger("scanner"),
	}
}

// Walk enumerates every regular file under root recursively, calling fn
// for each. Entries arrive depth-first in each directory's sorted order.
// RelPath is always slash-separated. The walk stops early when ctx is
// cancelled or fn returns an error. Nothing is cached: walking twice
// reads the tree twice.
func (s *Scanner) Walk(ctx context.Context, root string, fn WalkFunc) error {
	info, err := s.fs.Stat(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTraversal, "cannot read traversal root %s", root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrTraversal, "traversal root %s is not a directory", root)
	}

	s.logger.Debug().Str("root", root).Msg("Starting tree walk")
	return s.walkDir(ctx, root, "", fn)
}

// walkDir recurses into one directory. rel is the slash-separated path
// of dir relative to the walk root, empty at the top.
func (s *Scanner) walkDir(ctx context.Context, dir, rel string, fn WalkFunc) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTraversal, "cannot read directory %s", dir)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := entry.Name()
		childAbs := filepath.Join(dir, name)
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}

		switch {
		case entry.IsDir():
			if err := s.walkDir(ctx, childAbs, childRel, fn); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			info, err := entry.Info()
			if err != nil {
				return errors.Wrapf(err, errors.ErrTraversal, "cannot stat %s", childAbs)
			}
			err = fn(types.FileEntry{
				RelPath: childRel,
				AbsPath: childAbs,
				Size:    info.Size(),
			})
			if err != nil {
				return err
			}
		default:
			s.logger.Trace().
				Str("path", childRel).
				Msg("skipping irregular entry")
		}
	}

	return nil
}
