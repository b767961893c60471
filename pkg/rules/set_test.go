package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packup/packup/pkg/rules"
)

func mustCandidate(t *testing.T, rel string) rules.Candidate {
	t.Helper()
	c, err := rules.NewCandidate(rel)
	require.NoError(t, err)
	return c
}

func TestDirectoryRule(t *testing.T) {
	rule := rules.NewDirectoryRule("__pycache__")

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"direct_child", "__pycache__/module.cpython-312.pyc", true},
		{"nested_at_depth", "src/agents/__pycache__/helper.pyc", true},
		{"deeply_nested", "a/b/c/__pycache__/d/e.txt", true},
		{"similar_name_not_matched", "__pycache__extra/file.txt", false},
		{"file_named_like_dir_not_matched", "src/__pycache__", false},
		{"unrelated_path", "src/app.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Matches(mustCandidate(t, tt.path)))
		})
	}

	assert.Equal(t, rules.KindDirectory, rule.Kind())
	assert.Equal(t, "__pycache__", rule.Pattern())
}

func TestFilenameRule(t *testing.T) {
	rule := rules.NewFilenameRule(".env")

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"exact_match_top_level", ".env", true},
		{"exact_match_nested", "config/.env", true},
		{"suffix_variant_not_matched", ".env.example", false},
		{"prefix_variant_not_matched", "my.env", false},
		{"case_sensitive", "config/.ENV", false},
		{"directory_named_env_not_matched", ".env.d/settings", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Matches(mustCandidate(t, tt.path)))
		})
	}

	assert.Equal(t, rules.KindFilename, rule.Kind())
	assert.Equal(t, ".env", rule.Pattern())
}

func TestExtensionRule(t *testing.T) {
	rule := rules.NewExtensionRule(".pyc")

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"matches_extension", "module.pyc", true},
		{"matches_nested", "src/agents/helper.pyc", true},
		{"other_extension", "app.py", false},
		{"extension_substring_not_matched", "module.pycx", false},
		{"case_sensitive", "module.PYC", false},
		{"dotfile_without_extension", ".pyc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Matches(mustCandidate(t, tt.path)))
		})
	}
}

func TestExtensionRuleNormalizesLeadingDot(t *testing.T) {
	withDot := rules.NewExtensionRule(".pyc")
	withoutDot := rules.NewExtensionRule("pyc")

	assert.Equal(t, withDot.Pattern(), withoutDot.Pattern())

	c := mustCandidate(t, "module.pyc")
	assert.True(t, withoutDot.Matches(c))
}

func TestSetClassify(t *testing.T) {
	set := rules.NewSet(
		[]string{".git", "__pycache__", ".venv"},
		[]string{".env"},
		[]string{".pyc"},
	)

	tests := []struct {
		name string
		path string
		want rules.Classification
	}{
		{"plain_source_included", "src/app.py", rules.Included},
		{"git_dir_excluded", ".git/objects/ab/cdef", rules.Excluded},
		{"pycache_excluded_at_depth", "src/agents/__pycache__/x.bin", rules.Excluded},
		{"venv_excluded", ".venv/lib/python3.12/site-packages/pkg/mod.py", rules.Excluded},
		{"env_file_excluded", ".env", rules.Excluded},
		{"env_example_included", ".env.example", rules.Included},
		{"nested_env_excluded", "deploy/.env", rules.Excluded},
		{"pyc_excluded", "src/helper.pyc", rules.Excluded},
		{"manifest_included", "appPackage/manifest.json", rules.Included},
		{"readme_included", "README.md", rules.Included},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.Classify(mustCandidate(t, tt.path)))
		})
	}
}

func TestSetClassifyRuleReportsMatch(t *testing.T) {
	set := rules.NewSet([]string{".git"}, []string{".env"}, []string{".pyc"})

	cls, rule := set.ClassifyRule(mustCandidate(t, ".git/config"))
	assert.Equal(t, rules.Excluded, cls)
	require.NotNil(t, rule)
	assert.Equal(t, rules.KindDirectory, rule.Kind())

	cls, rule = set.ClassifyRule(mustCandidate(t, "src/app.py"))
	assert.Equal(t, rules.Included, cls)
	assert.Nil(t, rule)
}

// Classification must not depend on the order rules were supplied in.
func TestSetClassifyOrderIndependent(t *testing.T) {
	a := rules.NewSet([]string{".git", ".venv"}, []string{".env"}, []string{".pyc"})
	b := rules.NewSet([]string{".venv", ".git"}, []string{".env"}, []string{".pyc"})

	paths := []string{
		".git/HEAD",
		".venv/bin/python",
		".env",
		".env.example",
		"src/app.py",
		"src/cache.pyc",
	}

	for _, p := range paths {
		c := mustCandidate(t, p)
		assert.Equal(t, a.Classify(c), b.Classify(c), "path %s", p)
	}
}

// Repeated classification of the same candidate must give the same answer.
func TestSetClassifyDeterministic(t *testing.T) {
	set := rules.NewSet([]string{".git"}, []string{".env"}, []string{".pyc"})
	c := mustCandidate(t, "src/app.py")

	first := set.Classify(c)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, set.Classify(c))
	}
}

func TestEmptySetIncludesEverything(t *testing.T) {
	set := rules.NewSet(nil, nil, nil)

	assert.Equal(t, 0, set.Len())
	assert.Equal(t, rules.Included, set.Classify(mustCandidate(t, ".git/config")))
	assert.Equal(t, rules.Included, set.Classify(mustCandidate(t, ".env")))
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "included", rules.Included.String())
	assert.Equal(t, "excluded", rules.Excluded.String())
	assert.Equal(t, "unknown", rules.Classification(42).String())
}
