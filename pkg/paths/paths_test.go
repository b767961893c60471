package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packup/packup/pkg/paths"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty_path",
			input: "",
			want:  "",
		},
		{
			name:  "bare_tilde",
			input: "~",
			want:  home,
		},
		{
			name:  "tilde_with_subpath",
			input: "~/stage",
			want:  filepath.Join(home, "stage"),
		},
		{
			name:  "tilde_user_not_expanded",
			input: "~other/stage",
			want:  "~other/stage",
		},
		{
			name:  "absolute_path_unchanged",
			input: "/tmp/stage",
			want:  "/tmp/stage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.ExpandHome(tt.input))
		})
	}
}

func TestStagingBaseDir(t *testing.T) {
	t.Run("defaults_to_temp_dir", func(t *testing.T) {
		t.Setenv(paths.EnvStagingDir, "")
		assert.Equal(t, os.TempDir(), paths.StagingBaseDir())
	})

	t.Run("env_override", func(t *testing.T) {
		t.Setenv(paths.EnvStagingDir, "/var/stage")
		assert.Equal(t, "/var/stage", paths.StagingBaseDir())
	})
}

func TestStateDir(t *testing.T) {
	t.Run("env_override", func(t *testing.T) {
		t.Setenv(paths.EnvStateDir, "/var/state/packup")
		assert.Equal(t, "/var/state/packup", paths.StateDir())
		assert.Equal(t, filepath.Join("/var/state/packup", paths.LogFileName), paths.LogFilePath())
	})
}

func TestConfigFilePaths(t *testing.T) {
	got := paths.ConfigFilePaths("/proj")
	require.Len(t, got, 2)
	assert.Equal(t, filepath.Join("/proj", paths.ConfigFileName), got[0])
	assert.Equal(t, filepath.Join("/proj", paths.HiddenConfigFileName), got[1])
}
