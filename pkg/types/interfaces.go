package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for packup operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Create(name string) (io.WriteCloser, error)

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Lstat never follows symlinks. Implementations without symlink
	// support can fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
}
