package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Sync status colors
const (
	ColorAhead      Color = "2" // Green - local commits to push
	ColorBehind     Color = "1" // Red - upstream commits to pull
	ColorDiverged   Color = "9" // Bright red - both sides moved
	ColorInSync     Color = "8" // Gray - nothing to do
	ColorNoUpstream Color = "3" // Yellow - never pushed
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorSpinner   Color = "205" // Pink
	ColorWarning   Color = "208" // Orange - destructive confirmations
)
