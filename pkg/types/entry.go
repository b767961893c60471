package types

// FileEntry describes one regular file found during tree traversal.
type FileEntry struct {
	// RelPath is the path relative to the traversal root, always
	// slash-separated regardless of platform
	RelPath string

	// AbsPath is the absolute path to the file
	AbsPath string

	// Size is the file size in bytes
	Size int64
}
