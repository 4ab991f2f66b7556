package ui

import (
	"ramal/internal/theme"
	"ramal/internal/version"
)

// renderHeader builds the application header: app name, tagline, and an
// optional subtitle used as the dialog's form title.
func renderHeader(subtitle string) string {
	result := theme.AppNameStyle.Render("Ramal")
	result += theme.VersionStyle.Render(" " + version.Version)
	result += "\n"
	result += theme.TaglineStyle.Render(version.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	result += "\n"
	return result
}

// renderDialogHeader is the header used by the Dialog wrapper. Only
// dialog.go should call this; form components get it for free by being
// wrapped in a Dialog.
func renderDialogHeader(formTitle string) string {
	return renderHeader(formTitle)
}
