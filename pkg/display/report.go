// Package display renders run results for humans and machines. It is
// purely observational: nothing rendered here feeds back into the
// build pipeline.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/packup/packup/pkg/display/styles"
	"github.com/packup/packup/pkg/types"
)

// Renderer writes run reports in one concrete format.
type Renderer struct {
	writer io.Writer
	format Format
}

// NewRenderer creates a renderer for the given writer and format.
// FormatAuto must be resolved by the caller first.
func NewRenderer(w io.Writer, format Format) *Renderer {
	return &Renderer{
		writer: w,
		format: format,
	}
}

// RenderResult writes the run report for one completed run.
func (r *Renderer) RenderResult(result *types.RunResult) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.renderJSON(result)
	case FormatTerminal:
		return r.renderStyled(result)
	default:
		return r.renderPlain(result)
	}
}

func (r *Renderer) renderJSON(result *types.RunResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.writer, string(data))
	return err
}

func (r *Renderer) renderPlain(result *types.RunResult) error {
	var b strings.Builder

	header := result.Command
	if result.DryRun {
		header += " (dry run)"
	}
	fmt.Fprintf(&b, "%s\n", header)
	fmt.Fprintf(&b, "  destination : %s\n", result.Destination)
	fmt.Fprintf(&b, "  included    : %d\n", result.Stats.Included)
	fmt.Fprintf(&b, "  skipped     : %d\n", result.Stats.Skipped)
	if !result.DryRun {
		fmt.Fprintf(&b, "  archive     : %d entries, %s\n",
			result.Archive.Files, formatFileSize(result.Archive.Bytes))
	}
	fmt.Fprintf(&b, "  elapsed     : %s\n", result.Elapsed.Round(time.Millisecond))

	if len(result.Entries) > 0 {
		fmt.Fprintf(&b, "  contents:\n")
		for _, entry := range result.Entries {
			fmt.Fprintf(&b, "    %s\n", entry)
		}
	}

	_, err := io.WriteString(r.writer, b.String())
	return err
}

func (r *Renderer) renderStyled(result *types.RunResult) error {
	var b strings.Builder

	header := styles.GetStyle("Header").Render(result.Command)
	if result.DryRun {
		header += " " + styles.GetStyle("DryRunBanner").Render("(dry run)")
	}
	fmt.Fprintf(&b, "%s\n", header)

	label := styles.GetStyle("Muted")
	count := styles.GetStyle("Count")

	fmt.Fprintf(&b, "  %s %s\n",
		label.Render("Destination"),
		styles.GetStyle("FilePath").Render(result.Destination))
	fmt.Fprintf(&b, "  %s %s files\n",
		label.Render("Included   "), count.Render(fmt.Sprintf("%d", result.Stats.Included)))
	fmt.Fprintf(&b, "  %s %s files\n",
		label.Render("Skipped    "), count.Render(fmt.Sprintf("%d", result.Stats.Skipped)))
	if !result.DryRun {
		fmt.Fprintf(&b, "  %s %s entries, %s\n",
			label.Render("Archive    "),
			count.Render(fmt.Sprintf("%d", result.Archive.Files)),
			formatFileSize(result.Archive.Bytes))
	}
	fmt.Fprintf(&b, "  %s %s\n",
		label.Render("Elapsed    "),
		result.Elapsed.Round(time.Millisecond))

	if len(result.Entries) > 0 {
		fmt.Fprintf(&b, "  %s\n", label.Render("Contents"))
		entry := styles.GetStyle("Entry")
		for _, name := range result.Entries {
			fmt.Fprintf(&b, "  %s\n", entry.Render(name))
		}
	}

	_, err := io.WriteString(r.writer, b.String())
	return err
}

// formatFileSize formats a file size in bytes to a human-readable string
func formatFileSize(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case size >= GB:
		return fmt.Sprintf("%.2f GB", float64(size)/float64(GB))
	case size >= MB:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(MB))
	case size >= KB:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}
