package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ramal/internal/theme"
)

// HelpScreen lists every keyboard shortcut grouped by concern
type HelpScreen struct {
	keys *KeyMap
}

// NewHelpScreen creates the help screen content for the Dialog wrapper
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{keys: keys}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return h, nil
}

func (h *HelpScreen) View() string {
	var b strings.Builder

	renderGroup := func(title string, bindings ...key.Binding) {
		b.WriteString(theme.HelpGroupStyle.Render(title))
		b.WriteString("\n")
		for _, binding := range bindings {
			b.WriteString(theme.HelpKeyStyle.Render(binding.Help().Key))
			b.WriteString(theme.HelpDescStyle.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
	}

	renderGroup("Worktrees",
		h.keys.New,
		h.keys.Delete,
		h.keys.Refresh,
	)
	renderGroup("Navigation",
		h.keys.Up,
		h.keys.Down,
		h.keys.Filter,
	)
	renderGroup("Application",
		h.keys.Help,
		h.keys.Quit,
		h.keys.ForceQuit,
	)

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("Press esc to go back"))
	return b.String()
}
