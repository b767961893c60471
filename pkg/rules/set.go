package rules

import (
	"github.com/rs/zerolog"

	"github.com/packup/packup/pkg/logging"
)

// Set is an ordered collection of exclusion rules. Directory rules come
// first, then filename rules, then extension rules.
type Set struct {
	rules  []Rule
	logger zerolog.Logger
}

// NewSet builds a Set from per-kind name lists.
func NewSet(dirs, files, extensions []string) *Set {
	s := &Set{
		logger: logging.GetLogger("rules.set"),
	}
	for _, name := range dirs {
		s.rules = append(s.rules, NewDirectoryRule(name))
	}
	for _, name := range files {
		s.rules = append(s.rules, NewFilenameRule(name))
	}
	for _, ext := range extensions {
		s.rules = append(s.rules, NewExtensionRule(ext))
	}

	s.logger.Debug().
		Int("ruleCount", len(s.rules)).
		Msg("Built rule set")

	return s
}

// Rules returns the rules in evaluation order.
func (s *Set) Rules() []Rule {
	return s.rules
}

// Len returns the number of rules in the set.
func (s *Set) Len() int {
	return len(s.rules)
}

// Classify evaluates the candidate against the set. The candidate is
// excluded when any rule matches. Classify has no side effects, is
// deterministic, and is safe for concurrent use.
func (s *Set) Classify(c Candidate) Classification {
	cls, _ := s.ClassifyRule(c)
	return cls
}

// ClassifyRule is Classify plus the first rule that matched, nil when
// the candidate is included.
func (s *Set) ClassifyRule(c Candidate) (Classification, Rule) {
	for _, r := range s.rules {
		if r.Matches(c) {
			return Excluded, r
		}
	}
	return Included, nil
}
