// Package staging manages the ephemeral directory a deployment archive
// is assembled in.
//
// An Area lives under the platform temp location, never inside the
// project tree, and carries a random suffix so concurrent runs cannot
// collide. Whoever creates an Area owns exactly one Destroy call on
// every exit path; Destroy is idempotent so a deferred call is safe
// alongside an explicit one.
package staging

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/packup/packup/pkg/errors"
	"github.com/packup/packup/pkg/logging"
	"github.com/packup/packup/pkg/paths"
	"github.com/packup/packup/pkg/types"
)

// Area is one ephemeral staging directory.
type Area struct {
	fs        types.FS
	root      string
	logger    zerolog.Logger
	destroyed bool
}

// New creates a fresh staging directory under baseDir. Nothing exists to
// clean up when it fails.
func New(fsys types.FS, baseDir string) (*Area, error) {
	logger := logging.GetLogger("staging")

	root := filepath.Join(baseDir, paths.StagingPrefix+uuid.NewString())
	if err := fsys.MkdirAll(root, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStaging, "cannot create staging directory %s", root)
	}

	logger.Debug().Str("root", root).Msg("Staging area created")

	return &Area{
		fs:     fsys,
		root:   root,
		logger: logger,
	}, nil
}

// Root returns the staging directory path. Its children mirror the
// project-relative paths of the staged files.
func (a *Area) Root() string {
	return a.root
}

// Stage copies one file into the area, recreating its relative directory
// path. The source's permission bits are preserved.
func (a *Area) Stage(entry types.FileEntry) error {
	dest := filepath.Join(a.root, filepath.FromSlash(entry.RelPath))

	if err := a.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "cannot create staging directory for %s", entry.RelPath)
	}

	info, err := a.fs.Stat(entry.AbsPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "cannot stat %s", entry.RelPath)
	}

	data, err := a.fs.ReadFile(entry.AbsPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "cannot read %s", entry.RelPath)
	}

	if err := a.fs.WriteFile(dest, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "cannot stage %s", entry.RelPath)
	}

	return nil
}

// StageAll copies the entries with at most workers parallel copies.
// Staging one file touches nothing shared, so copies need no further
// coordination. The first failure cancels the rest and is returned.
func (a *Area) StageAll(ctx context.Context, entries []types.FileEntry, workers int) error {
	if workers < 1 {
		workers = 1
	}

	a.logger.Debug().
		Int("files", len(entries)).
		Int("workers", workers).
		Msg("Staging files")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return a.Stage(entry)
		})
	}

	return g.Wait()
}

// Destroy removes the staging directory and everything in it. Calling it
// again is a no-op.
func (a *Area) Destroy() error {
	if a.destroyed {
		return nil
	}

	if err := a.fs.RemoveAll(a.root); err != nil {
		return errors.Wrapf(err, errors.ErrStaging, "cannot remove staging directory %s", a.root)
	}

	a.destroyed = true
	a.logger.Debug().Str("root", a.root).Msg("Staging area destroyed")
	return nil
}
