// Package types defines the core types and interfaces used throughout packup.
// This includes the FS filesystem interface, the FileEntry produced by tree
// traversal, and the result structures emitted by a build run.
package types
