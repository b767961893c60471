package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packup/packup/pkg/config"
	"github.com/packup/packup/pkg/errors"
	"github.com/packup/packup/pkg/rules"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "deploy.zip", cfg.Deploy.Output)
	assert.Equal(t, 4, cfg.Deploy.Workers)

	assert.Contains(t, cfg.Exclude.Dirs, ".git")
	assert.Contains(t, cfg.Exclude.Dirs, "__pycache__")
	assert.Contains(t, cfg.Exclude.Dirs, ".venv")
	assert.Contains(t, cfg.Exclude.Files, ".env")
	assert.Contains(t, cfg.Exclude.Extensions, ".pyc")

	assert.Equal(t, "appPackage", cfg.Bundle.Dir)
	assert.Equal(t, []string{"manifest.json", "color.png", "outline.png"}, cfg.Bundle.Files)
	assert.Equal(t, "appPackage.zip", cfg.Bundle.Output)
}

func TestLoadWithoutProjectFile(t *testing.T) {
	cfg, err := config.Load(t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, config.Default().Deploy, cfg.Deploy)
	assert.Equal(t, config.Default().Exclude, cfg.Exclude)
}

func TestLoadProjectFileOverrides(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		validate func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "deploy_output_override",
			content: `
[deploy]
output = "release.zip"
`,
			validate: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "release.zip", cfg.Deploy.Output)
				// Untouched sections keep defaults
				assert.Equal(t, 4, cfg.Deploy.Workers)
				assert.Contains(t, cfg.Exclude.Dirs, ".git")
			},
		},
		{
			name: "exclude_lists_replace_defaults",
			content: `
[exclude]
dirs = ["build"]
files = []
extensions = [".log"]
`,
			validate: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, []string{"build"}, cfg.Exclude.Dirs)
				assert.Empty(t, cfg.Exclude.Files)
				assert.Equal(t, []string{".log"}, cfg.Exclude.Extensions)
			},
		},
		{
			name: "bundle_override",
			content: `
[bundle]
dir = "package"
files = ["manifest.json"]
output = "package.zip"
`,
			validate: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "package", cfg.Bundle.Dir)
				assert.Equal(t, []string{"manifest.json"}, cfg.Bundle.Files)
				assert.Equal(t, "package.zip", cfg.Bundle.Output)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, "packup.toml", tt.content)

			cfg, err := config.Load(root, nil)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadHiddenConfigFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, ".packup.toml", "[deploy]\noutput = \"hidden.zip\"\n")

	cfg, err := config.Load(root, nil)
	require.NoError(t, err)
	assert.Equal(t, "hidden.zip", cfg.Deploy.Output)
}

func TestLoadPrefersVisibleConfigFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "packup.toml", "[deploy]\noutput = \"visible.zip\"\n")
	writeConfig(t, root, ".packup.toml", "[deploy]\noutput = \"hidden.zip\"\n")

	cfg, err := config.Load(root, nil)
	require.NoError(t, err)
	assert.Equal(t, "visible.zip", cfg.Deploy.Output)
}

func TestLoadEnvOverrides(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "packup.toml", "[deploy]\noutput = \"from-file.zip\"\n")

	t.Setenv("PACKUP_DEPLOY_OUTPUT", "from-env.zip")
	t.Setenv("PACKUP_DEPLOY_WORKERS", "8")
	t.Setenv("PACKUP_EXCLUDE_EXTENSIONS", ".log,.tmp")

	cfg, err := config.Load(root, nil)
	require.NoError(t, err)

	assert.Equal(t, "from-env.zip", cfg.Deploy.Output)
	assert.Equal(t, 8, cfg.Deploy.Workers)
	assert.Equal(t, []string{".log", ".tmp"}, cfg.Exclude.Extensions)
}

func TestLoadOverridesBeatEnv(t *testing.T) {
	root := t.TempDir()
	t.Setenv("PACKUP_DEPLOY_OUTPUT", "from-env.zip")

	cfg, err := config.Load(root, map[string]interface{}{
		"deploy.output":  "from-flag.zip",
		"deploy.workers": 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "from-flag.zip", cfg.Deploy.Output)
	assert.Equal(t, 2, cfg.Deploy.Workers)
}

func TestLoadInvalidTOML(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "packup.toml", "[deploy\noutput = broken")

	_, err := config.Load(root, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestFindProjectFile(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		pf, found, err := config.FindProjectFile(t.TempDir())
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, pf)
	})

	t.Run("present", func(t *testing.T) {
		root := t.TempDir()
		path := writeConfig(t, root, "packup.toml", "[exclude]\ndirs = [\"build\"]\n")

		pf, found, err := config.FindProjectFile(root)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, path, pf.Path)
		assert.Equal(t, []string{"build"}, pf.Config.Exclude.Dirs)
	})

	t.Run("unparseable", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, "packup.toml", "not toml [")

		_, found, err := config.FindProjectFile(root)
		assert.True(t, found)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestRuleSet(t *testing.T) {
	cfg := config.Default()
	set := cfg.RuleSet()

	c, err := rules.NewCandidate(".git/config")
	require.NoError(t, err)
	assert.Equal(t, rules.Excluded, set.Classify(c))

	c, err = rules.NewCandidate("src/app.py")
	require.NoError(t, err)
	assert.Equal(t, rules.Included, set.Classify(c))
}
