package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + status line (1) + pane borders (2) + help bar (3) = 7
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// ScopeWidth is the fixed width of the scope sidebar.
	ScopeWidth int

	// TwoPaneWidthOffset is subtracted before sizing the list pane.
	// Accounts for borders and spacing between the two panes.
	TwoPaneWidthOffset int

	// MinListWidth is the minimum width for the list pane.
	MinListWidth int

	// ContentPadding is subtracted from pane width for item rendering.
	ContentPadding int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	SearchCharLimit int
	NameCharLimit   int
	StandardWidth   int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	Ellipsis string
}

// DefaultLayoutConfig returns the standard layout configuration.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:    7,
			MinHeight:          5,
			ScopeWidth:         28,
			TwoPaneWidthOffset: 8,
			MinListWidth:       30,
			ContentPadding:     4,
		},
		Input: InputConfig{
			SearchCharLimit: 100,
			NameCharLimit:   60,
			StandardWidth:   40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
