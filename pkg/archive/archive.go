// Package archive materializes ZIP archives from staged trees and
// explicit file lists.
//
// Both entry points replace a pre-existing destination rather than
// appending to it, and both check their inputs before the old
// destination is deleted: a run with broken inputs leaves an earlier
// archive untouched. On a mid-write failure the partial output is
// removed.
package archive

import (
	"archive/zip"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/packup/packup/pkg/errors"
	"github.com/packup/packup/pkg/logging"
	"github.com/packup/packup/pkg/types"
)

// Writer materializes ZIP archives onto a filesystem.
type Writer struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Writer over the given filesystem
func New(fsys types.FS) *Writer {
	return &Writer{
		fs:     fsys,
		logger: logging.GetLogger("archive"),
	}
}

// WriteDir archives the tree under sourceRoot into destination. The
// children of sourceRoot become the archive's top-level entries;
// sourceRoot itself never appears in entry paths.
func (w *Writer) WriteDir(sourceRoot, destination string) (types.ArchiveStats, error) {
	info, err := w.fs.Stat(sourceRoot)
	if err != nil {
		return types.ArchiveStats{}, errors.Wrapf(err, errors.ErrArchive, "archive source %s does not exist", sourceRoot)
	}
	if !info.IsDir() {
		return types.ArchiveStats{}, errors.Newf(errors.ErrArchive, "archive source %s is not a directory", sourceRoot)
	}

	return w.write(destination, func(zw *zip.Writer, stats *types.ArchiveStats) error {
		return w.addTree(zw, sourceRoot, "", stats)
	})
}

// WriteFiles archives an explicit list of files into destination. Every
// entry lands at the archive root under its base name, no nesting.
func (w *Writer) WriteFiles(files []string, destination string) (types.ArchiveStats, error) {
	for _, f := range files {
		info, err := w.fs.Stat(f)
		if err != nil {
			return types.ArchiveStats{}, errors.Wrapf(err, errors.ErrArchive, "archive input %s does not exist", f)
		}
		if info.IsDir() {
			return types.ArchiveStats{}, errors.Newf(errors.ErrArchive, "archive input %s is a directory", f)
		}
	}

	return w.write(destination, func(zw *zip.Writer, stats *types.ArchiveStats) error {
		for _, f := range files {
			if err := w.addFile(zw, f, filepath.Base(f), stats); err != nil {
				return err
			}
		}
		return nil
	})
}

// write replaces destination with a fresh archive produced by fill.
func (w *Writer) write(destination string, fill func(*zip.Writer, *types.ArchiveStats) error) (types.ArchiveStats, error) {
	if _, err := w.fs.Stat(destination); err == nil {
		if err := w.fs.Remove(destination); err != nil {
			return types.ArchiveStats{}, errors.Wrapf(err, errors.ErrArchive, "cannot replace existing archive %s", destination)
		}
		w.logger.Debug().Str("destination", destination).Msg("Removed existing archive")
	}

	out, err := w.fs.Create(destination)
	if err != nil {
		return types.ArchiveStats{}, errors.Wrapf(err, errors.ErrArchive, "cannot create archive %s", destination)
	}

	zw := zip.NewWriter(out)

	var stats types.ArchiveStats
	if err := fill(zw, &stats); err != nil {
		_ = zw.Close()
		_ = out.Close()
		if rmErr := w.fs.Remove(destination); rmErr != nil {
			w.logger.Warn().Err(rmErr).Str("destination", destination).Msg("Failed to remove partial archive")
		}
		return types.ArchiveStats{}, err
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		_ = w.fs.Remove(destination)
		return types.ArchiveStats{}, errors.Wrapf(err, errors.ErrArchive, "cannot finalize archive %s", destination)
	}
	if err := out.Close(); err != nil {
		_ = w.fs.Remove(destination)
		return types.ArchiveStats{}, errors.Wrapf(err, errors.ErrArchive, "cannot finalize archive %s", destination)
	}

	w.logger.Debug().
		Str("destination", destination).
		Int("files", stats.Files).
		Int64("bytes", stats.Bytes).
		Msg("Archive written")

	return stats, nil
}

// addTree writes dir's contents below zipPath, empty at the top level.
func (w *Writer) addTree(zw *zip.Writer, dir, zipPath string, stats *types.ArchiveStats) error {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "cannot read archive source directory %s", dir)
	}

	for _, entry := range entries {
		name := entry.Name()
		childAbs := filepath.Join(dir, name)
		childZip := name
		if zipPath != "" {
			childZip = zipPath + "/" + name
		}

		if entry.IsDir() {
			if _, err := zw.Create(childZip + "/"); err != nil {
				return errors.Wrapf(err, errors.ErrArchive, "cannot add directory %s", childZip)
			}
			if err := w.addTree(zw, childAbs, childZip, stats); err != nil {
				return err
			}
			continue
		}

		if err := w.addFile(zw, childAbs, childZip, stats); err != nil {
			return err
		}
	}

	return nil
}

// addFile deflates one file into the archive as entryName.
func (w *Writer) addFile(zw *zip.Writer, src, entryName string, stats *types.ArchiveStats) error {
	info, err := w.fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "archive input %s does not exist", src)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "cannot build header for %s", entryName)
	}
	header.Name = filepath.ToSlash(entryName)
	header.Method = zip.Deflate

	writer, err := zw.CreateHeader(header)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "cannot add %s", entryName)
	}

	data, err := w.fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "cannot read %s", src)
	}

	n, err := writer.Write(data)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "cannot write %s", entryName)
	}

	stats.Files++
	stats.Bytes += int64(n)
	return nil
}
