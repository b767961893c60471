package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderInstructionsPlain(t *testing.T) {
	out := RenderInstructions(FormatText)
	assert.Equal(t, bundleInstructions, out)
	assert.Contains(t, out, "Upload the app package")
}

func TestRenderInstructionsTerminal(t *testing.T) {
	out := RenderInstructions(FormatTerminal)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "manifest")
}

func TestRenderInstructionsJSONStaysRaw(t *testing.T) {
	assert.Equal(t, bundleInstructions, RenderInstructions(FormatJSON))
}
