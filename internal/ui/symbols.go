package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Action completed successfully
	SymbolFail    = "✗" // Action failed
	SymbolSkipped = "⊘" // Record skipped
	SymbolPreview = "○" // Dry-run preview, nothing performed
)
