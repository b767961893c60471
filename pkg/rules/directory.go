package rules

import (
	"fmt"

	"github.com/packup/packup/pkg/logging"
)

// DirectoryRule excludes every file below a directory with a given name,
// at any depth in the tree.
type DirectoryRule struct {
	name string
}

// NewDirectoryRule creates a rule excluding files under directories named name
func NewDirectoryRule(name string) *DirectoryRule {
	logger := logging.GetLogger("rules.directory")
	logger.Trace().
		Str("name", name).
		Msg("created directory rule")

	return &DirectoryRule{name: name}
}

// Kind returns the rule kind
func (r *DirectoryRule) Kind() string {
	return KindDirectory
}

// Pattern returns the directory name this rule matches
func (r *DirectoryRule) Pattern() string {
	return r.name
}

// Description returns a human-readable description of this rule
func (r *DirectoryRule) Description() string {
	return fmt.Sprintf("Excludes files under any directory named '%s'", r.name)
}

// Matches checks whether any ancestor directory segment equals the
// configured name. The file's own base name is never considered.
func (r *DirectoryRule) Matches(c Candidate) bool {
	for _, dir := range c.Dirs() {
		if dir == r.name {
			return true
		}
	}
	return false
}
