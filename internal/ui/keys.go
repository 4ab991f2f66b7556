package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains all keyboard shortcuts
type KeyMap struct {
	Delete    key.Binding
	Down      key.Binding
	Filter    key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	New       key.Binding
	Quit      key.Binding
	Refresh   key.Binding
	Up        key.Binding
}

// NewKeyMap creates a KeyMap with the default bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "delete worktree"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "select next worktree"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter by branch name"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("?", "show keyboard shortcuts"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "create worktree"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "exit application"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh list"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "select previous worktree"),
		),
	}
}

// ShortHelp returns the curated bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.New,
		k.Delete,
		k.Refresh,
		k.Filter,
		k.Help,
		k.Quit,
	}
}
