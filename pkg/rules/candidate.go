package rules

import (
	"path"
	"strings"

	"github.com/packup/packup/pkg/errors"
)

// Candidate is a project-root-relative file path prepared for rule
// matching. Separators are normalized to forward slashes so rules behave
// identically on every platform.
type Candidate struct {
	rel      string
	segments []string
}

// NewCandidate builds a Candidate from a root-relative path. Absolute
// paths and paths escaping the root are rejected: classification operates
// on the project tree only.
func NewCandidate(rel string) (Candidate, error) {
	normalized := strings.ReplaceAll(rel, "\\", "/")
	normalized = path.Clean(normalized)
	if normalized == "" || normalized == "." {
		return Candidate{}, errors.New(errors.ErrInvalidInput, "candidate path is empty")
	}
	if path.IsAbs(normalized) {
		return Candidate{}, errors.Newf(errors.ErrInvalidInput, "candidate path %q is absolute", rel)
	}
	if normalized == ".." || strings.HasPrefix(normalized, "../") {
		return Candidate{}, errors.Newf(errors.ErrInvalidInput, "candidate path %q escapes the project root", rel)
	}
	return Candidate{
		rel:      normalized,
		segments: strings.Split(normalized, "/"),
	}, nil
}

// RelPath returns the normalized root-relative path.
func (c Candidate) RelPath() string {
	return c.rel
}

// Base returns the file's base name.
func (c Candidate) Base() string {
	return c.segments[len(c.segments)-1]
}

// Ext returns the file's extension including the leading dot. A name
// whose only dot is the leading one, like `.env`, has no extension.
func (c Candidate) Ext() string {
	base := c.Base()
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return ""
	}
	return base[idx:]
}

// Dirs returns the ancestor directory segments, outermost first. A
// top-level file has none.
func (c Candidate) Dirs() []string {
	if len(c.segments) <= 1 {
		return nil
	}
	return c.segments[:len(c.segments)-1]
}
