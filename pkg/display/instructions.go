package display

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

//go:embed instructions.md
var bundleInstructions string

// RenderInstructions returns the post-bundle upload walkthrough,
// rendered as rich markdown when the format allows it. Rendering
// failures fall back to the raw text.
func RenderInstructions(format Format) string {
	if format != FormatTerminal {
		return bundleInstructions
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return bundleInstructions
	}

	rendered, err := renderer.Render(bundleInstructions)
	if err != nil {
		return bundleInstructions
	}

	return rendered
}
