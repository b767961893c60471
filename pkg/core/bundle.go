package core

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"github.com/packup/packup/pkg/archive"
	"github.com/packup/packup/pkg/errors"
	"github.com/packup/packup/pkg/filesystem"
	"github.com/packup/packup/pkg/logging"
	"github.com/packup/packup/pkg/paths"
	"github.com/packup/packup/pkg/types"
)

// BundleOptions contains options for the Bundle operation
type BundleOptions struct {
	// Root is the directory bundle paths are resolved against
	Root string
	// Dir is a subdirectory under Root holding the bundle inputs
	// (optional)
	Dir string
	// Files are the files to package, flat at the archive root
	Files []string
	// Output is the destination archive path. Relative paths are
	// resolved against Root.
	Output string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// Bundle packages an explicit list of files into a zip archive, flat at
// the archive root. Every input is verified before the destination is
// touched, so a failed run leaves a pre-existing archive intact.
func Bundle(ctx context.Context, opts BundleOptions) (*types.RunResult, error) {
	log := logging.GetLogger("core.bundle")
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	if len(opts.Files) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no bundle files specified")
	}

	root, err := filepath.Abs(paths.ExpandHome(opts.Root))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to resolve root path %s", opts.Root)
	}

	base := root
	if opts.Dir != "" {
		if dir := paths.ExpandHome(opts.Dir); filepath.IsAbs(dir) {
			base = dir
		} else {
			base = filepath.Join(root, dir)
		}
	}

	output := paths.ExpandHome(opts.Output)
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, output)
	}

	log.Debug().
		Str("dir", base).
		Str("output", output).
		Int("files", len(opts.Files)).
		Msg("Starting bundle")

	// Verify every input before the destination archive is touched.
	inputs := make([]string, 0, len(opts.Files))
	for _, f := range opts.Files {
		p := f
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		info, err := fs.Stat(p)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrMissingInput, "bundle file %s not found", p)
		}
		if info.IsDir() {
			return nil, errors.Newf(errors.ErrMissingInput, "bundle input %s is a directory, not a file", p)
		}
		inputs = append(inputs, p)
	}

	archStats, err := archive.New(fs).WriteFiles(inputs, output)
	if err != nil {
		return nil, err
	}

	entries := make([]string, 0, len(inputs))
	for _, p := range inputs {
		entries = append(entries, filepath.Base(p))
	}
	sort.Strings(entries)

	result := &types.RunResult{
		Command:     types.ModeBundle,
		Destination: output,
		Stats:       types.RunStats{Included: len(inputs)},
		Archive:     archStats,
		Entries:     entries,
		Elapsed:     time.Since(start),
		Timestamp:   time.Now(),
	}

	log.Info().
		Str("destination", output).
		Int("files", archStats.Files).
		Msg("Bundle complete")

	return result, nil
}
