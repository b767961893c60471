package rules

import (
	"fmt"
	"strings"

	"github.com/packup/packup/pkg/logging"
)

// ExtensionRule excludes files whose extension equals an exact
// extension, leading dot included.
type ExtensionRule struct {
	extension string
}

// NewExtensionRule creates a rule excluding files with the given
// extension. A missing leading dot is added, so ".pyc" and "pyc"
// configure the same rule.
func NewExtensionRule(extension string) *ExtensionRule {
	logger := logging.GetLogger("rules.extension")

	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	logger.Trace().
		Str("extension", extension).
		Msg("created extension rule")

	return &ExtensionRule{extension: extension}
}

// Kind returns the rule kind
func (r *ExtensionRule) Kind() string {
	return KindExtension
}

// Pattern returns the extension this rule matches
func (r *ExtensionRule) Pattern() string {
	return r.extension
}

// Description returns a human-readable description of this rule
func (r *ExtensionRule) Description() string {
	return fmt.Sprintf("Excludes files with extension '%s'", r.extension)
}

// Matches checks whether the candidate's extension equals the configured
// one. Dotfiles without a further dot have no extension and never match.
func (r *ExtensionRule) Matches(c Candidate) bool {
	return c.Ext() == r.extension
}
