package types

import "time"

// Build modes reported in RunResult.Mode.
const (
	ModeDeploy = "deploy"
	ModeBundle = "bundle"
)

// RunStats counts classification outcomes for one run.
type RunStats struct {
	// Included is the number of files selected for packaging
	Included int `json:"included"`

	// Skipped is the number of files excluded by rules
	Skipped int `json:"skipped"`
}

// Total returns the number of files considered.
func (s RunStats) Total() int {
	return s.Included + s.Skipped
}

// ArchiveStats describes what the archive writer produced.
type ArchiveStats struct {
	// Files is the number of file entries written
	Files int `json:"files"`

	// Bytes is the total uncompressed size of the written entries
	Bytes int64 `json:"bytes"`
}

// RunResult is the observational summary of one build run. It never
// feeds back into control flow.
type RunResult struct {
	Command     string        `json:"command"` // "deploy", "bundle"
	Destination string        `json:"destination"`
	Stats       RunStats      `json:"stats"`
	Archive     ArchiveStats  `json:"archive"`
	Entries     []string      `json:"entries"` // sorted top-level archive entries
	DryRun      bool          `json:"dryRun"`
	Elapsed     time.Duration `json:"elapsed"`
	Timestamp   time.Time     `json:"timestamp"`
}
