package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packup/packup/pkg/errors"
	"github.com/packup/packup/pkg/rules"
)

func TestNewCandidate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRel  string
		wantBase string
		wantExt  string
		wantDirs []string
		wantErr  bool
	}{
		{
			name:     "top_level_file",
			input:    "app.py",
			wantRel:  "app.py",
			wantBase: "app.py",
			wantExt:  ".py",
			wantDirs: nil,
		},
		{
			name:     "nested_file",
			input:    "src/agents/coordinator.py",
			wantRel:  "src/agents/coordinator.py",
			wantBase: "coordinator.py",
			wantExt:  ".py",
			wantDirs: []string{"src", "agents"},
		},
		{
			name:     "backslashes_normalized",
			input:    `src\agents\coordinator.py`,
			wantRel:  "src/agents/coordinator.py",
			wantBase: "coordinator.py",
			wantExt:  ".py",
			wantDirs: []string{"src", "agents"},
		},
		{
			name:     "leading_dot_segment_cleaned",
			input:    "./config/settings.toml",
			wantRel:  "config/settings.toml",
			wantBase: "settings.toml",
			wantExt:  ".toml",
			wantDirs: []string{"config"},
		},
		{
			name:     "dotfile_has_no_extension",
			input:    ".env",
			wantRel:  ".env",
			wantBase: ".env",
			wantExt:  "",
			wantDirs: nil,
		},
		{
			name:     "dotfile_with_suffix_has_extension",
			input:    ".env.example",
			wantRel:  ".env.example",
			wantBase: ".env.example",
			wantExt:  ".example",
			wantDirs: nil,
		},
		{
			name:     "no_extension",
			input:    "Makefile",
			wantRel:  "Makefile",
			wantBase: "Makefile",
			wantExt:  "",
			wantDirs: nil,
		},
		{
			name:    "empty_path_rejected",
			input:   "",
			wantErr: true,
		},
		{
			name:    "dot_path_rejected",
			input:   ".",
			wantErr: true,
		},
		{
			name:    "absolute_path_rejected",
			input:   "/etc/passwd",
			wantErr: true,
		},
		{
			name:    "parent_escape_rejected",
			input:   "../outside.txt",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := rules.NewCandidate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRel, c.RelPath())
			assert.Equal(t, tt.wantBase, c.Base())
			assert.Equal(t, tt.wantExt, c.Ext())
			assert.Equal(t, tt.wantDirs, c.Dirs())
		})
	}
}
