package rules

import (
	"fmt"

	"github.com/packup/packup/pkg/logging"
)

// FilenameRule excludes files whose base name equals an exact name. The
// match is byte-exact: a rule for `.env` does not exclude `.env.example`.
type FilenameRule struct {
	name string
}

// NewFilenameRule creates a rule excluding files named exactly name
func NewFilenameRule(name string) *FilenameRule {
	logger := logging.GetLogger("rules.filename")
	logger.Trace().
		Str("name", name).
		Msg("created filename rule")

	return &FilenameRule{name: name}
}

// Kind returns the rule kind
func (r *FilenameRule) Kind() string {
	return KindFilename
}

// Pattern returns the file name this rule matches
func (r *FilenameRule) Pattern() string {
	return r.name
}

// Description returns a human-readable description of this rule
func (r *FilenameRule) Description() string {
	return fmt.Sprintf("Excludes files named '%s'", r.name)
}

// Matches checks whether the candidate's base name equals the configured name
func (r *FilenameRule) Matches(c Candidate) bool {
	return c.Base() == r.name
}
