package display

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packup/packup/pkg/types"
)

func sampleResult() *types.RunResult {
	return &types.RunResult{
		Command:     types.ModeDeploy,
		Destination: "/project/deploy.zip",
		Stats:       types.RunStats{Included: 12, Skipped: 34},
		Archive:     types.ArchiveStats{Files: 12, Bytes: 2560},
		Entries:     []string{"app.py", "src"},
		Elapsed:     125 * time.Millisecond,
		Timestamp:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderResultPlain(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(&buf, FormatText).RenderResult(sampleResult())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "deploy\n")
	assert.Contains(t, out, "/project/deploy.zip")
	assert.Contains(t, out, "included    : 12")
	assert.Contains(t, out, "skipped     : 34")
	assert.Contains(t, out, "12 entries, 2.50 KB")
	assert.Contains(t, out, "app.py")
	assert.Contains(t, out, "src")
}

func TestRenderResultPlainDryRun(t *testing.T) {
	result := sampleResult()
	result.DryRun = true
	result.Archive = types.ArchiveStats{}

	var buf bytes.Buffer
	err := NewRenderer(&buf, FormatText).RenderResult(result)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "deploy (dry run)")
	assert.NotContains(t, out, "archive")
}

func TestRenderResultStyled(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(&buf, FormatTerminal).RenderResult(sampleResult())
	require.NoError(t, err)

	// Styling may add escape codes but never drops content
	out := buf.String()
	assert.Contains(t, out, "deploy")
	assert.Contains(t, out, "/project/deploy.zip")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "34")
}

func TestRenderResultJSON(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(&buf, FormatJSON).RenderResult(sampleResult())
	require.NoError(t, err)

	var decoded types.RunResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "deploy", decoded.Command)
	assert.Equal(t, 12, decoded.Stats.Included)
	assert.Equal(t, []string{"app.py", "src"}, decoded.Entries)
}

func TestRenderResultNil(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(&buf, FormatText).RenderResult(nil)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 bytes"},
		{512, "512 bytes"},
		{1024, "1.00 KB"},
		{2560, "2.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{5 * 1024 * 1024 * 1024, "5.00 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFileSize(tt.size))
		})
	}
}
