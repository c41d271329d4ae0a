package layout

// CalculatePaneHeight returns the content height for the panes given
// the terminal height.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateListWidth returns the width of the list pane next to the
// fixed-width scope sidebar.
func CalculateListWidth(terminalWidth int, cfg PaneConfig) int {
	width := terminalWidth - cfg.ScopeWidth - cfg.TwoPaneWidthOffset
	if width < cfg.MinListWidth {
		return cfg.MinListWidth
	}
	return width
}

// CalculateItemWidth returns the usable width for an item line inside
// a pane of the given width.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	width := paneWidth - cfg.ContentPadding
	if width < 1 {
		return 1
	}
	return width
}
