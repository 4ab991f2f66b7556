package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Sync badge styles
var (
	AheadBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorAhead)

	BehindBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorBehind)

	DivergedBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorDiverged).
				Bold(true)

	InSyncBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorInSync)

	NoUpstreamBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorNoUpstream)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Warning style for destructive confirmations
var WarningStyle = lipgloss.NewStyle().
	Foreground(ColorWarning).
	Bold(true)
