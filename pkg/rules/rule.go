package rules

// Rule kinds as reported by Rule.Kind
const (
	KindDirectory = "directory"
	KindFilename  = "filename"
	KindExtension = "extension"
)

// Rule decides whether a candidate file is excluded from packaging.
type Rule interface {
	// Kind returns the rule kind: directory, filename or extension
	Kind() string

	// Pattern returns the exact name this rule matches
	Pattern() string

	// Description returns a human-readable description of what this rule excludes
	Description() string

	// Matches checks whether the candidate is excluded by this rule
	Matches(c Candidate) bool
}

// Classification is the outcome of evaluating a candidate against a rule set.
type Classification int

const (
	// Included means no rule matched and the file gets packaged
	Included Classification = iota

	// Excluded means at least one rule matched
	Excluded
)

// String returns the lowercase name of the classification
func (c Classification) String() string {
	switch c {
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	default:
		return "unknown"
	}
}
