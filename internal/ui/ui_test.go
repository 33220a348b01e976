package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(HeaderInfo{Version: "v1.0.0", Tagline: "SSH key & config generator"})

	assert.Contains(t, out, "portal22")
	assert.Contains(t, out, "v1.0.0")
	assert.Contains(t, out, "SSH key & config generator")
	assert.Contains(t, out, strings.Repeat("━", HeaderWidth))
}

func TestRenderHeaderWithoutTagline(t *testing.T) {
	out := RenderHeader(HeaderInfo{Version: "dev"})

	assert.Contains(t, out, "dev")
	// Title line and divider line, nothing else
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestSymbolsDistinct(t *testing.T) {
	symbols := []string{SymbolSuccess, SymbolFail, SymbolSkipped, SymbolPreview}
	seen := make(map[string]bool)
	for _, s := range symbols {
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "symbol %q reused", s)
		seen[s] = true
	}
}
