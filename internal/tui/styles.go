package tui

import "github.com/charmbracelet/lipgloss"

// Application branding constants
const (
	AppName      = "Glimpse"
	SidebarTitle = "LEDs"
	DetailTitle  = "LED detail"
)

// Layout constants
const (
	// SidebarRatio is the fraction of terminal width given to the LED list.
	SidebarRatio = 5

	// MinSidebarWidth keeps the list readable on narrow terminals.
	MinSidebarWidth = 20

	// Fallback dimensions used before the first window size message arrives.
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#5F87FF") // Blue
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	OnColor        = lipgloss.Color("#43BF6D") // Green
	OffColor       = lipgloss.Color("#626262") // Gray
	HighlightColor = lipgloss.Color("#5F87FF") // Blue (selection background)
)

// Common styles
var (
	// Pane title style - bold, blue, centered by the pane renderer
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Bordered pane containers
	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(SubtleColor)

	DetailStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(SubtleColor)

	// List item style (unselected)
	ListItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Selected list item style - highlighted with the selection background
	SelectedListItemStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(HighlightColor)

	// On/off state labels in the detail pane
	OnStateStyle = lipgloss.NewStyle().
			Foreground(OnColor).
			Bold(true)

	OffStateStyle = lipgloss.NewStyle().
			Foreground(OffColor)

	// Log line style
	LogStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Help footer style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// RenderState renders an on/off label with the matching style.
func RenderState(on bool) string {
	if on {
		return OnStateStyle.Render("on")
	}
	return OffStateStyle.Render("off")
}

// SidebarWidth calculates the list pane width for a given terminal width.
func SidebarWidth(terminalWidth int) int {
	w := terminalWidth / SidebarRatio
	if w < MinSidebarWidth {
		w = MinSidebarWidth
	}
	return w
}
