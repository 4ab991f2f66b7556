package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps any tea.Model content and prepends the application header
// with a title. Form components never render their own headers; wrapping
// them here keeps every dialog consistent.
type Dialog struct {
	content tea.Model
	title   string
}

// NewDialog creates a new dialog wrapper
func NewDialog(title string, content tea.Model) *Dialog {
	return &Dialog{
		content: content,
		title:   title,
	}
}

// Init delegates to the wrapped content
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to the wrapped content and keeps the wrapper
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View renders the header followed by the wrapped content
func (d *Dialog) View() string {
	return renderDialogHeader(d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion after Update
func (d *Dialog) Content() tea.Model {
	return d.content
}
