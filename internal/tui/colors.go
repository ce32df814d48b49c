package tui

// Color constants for the tdo theme
const (
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Titles, user input
	ColorSecondaryText = "#B1B8C7" // Context column, placeholders
	ColorDisabledText  = "#6D7383" // Completed tasks
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#06B6D4" // View headers
	ColorAccentBright = "#67E8F9" // Focused field, section headers

	// State Colors
	ColorError   = "#EF4444" // Overdue glyph, validation errors
	ColorSuccess = "#22C55E" // Confirmations
)
