package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"ramal/internal/config"
	"ramal/internal/logging"
)

// SetupFormResult contains the result of the first-run setup
type SetupFormResult struct {
	Cancelled   bool
	Error       error
	WorktreeDir string
}

// SetupForm asks for the worktree directory on first run and writes the
// repository config file. Shown whenever the repo has no config yet.
type SetupForm struct {
	Completed bool // Exported so Model can check completion

	form     *huh.Form
	input    string
	repoRoot string
	result   SetupFormResult
}

// NewSetupForm creates the first-run setup form
func NewSetupForm(repoRoot string) *SetupForm {
	sf := &SetupForm{
		repoRoot: repoRoot,
		input:    config.DefaultWorktreeDir,
	}

	dirField := huh.NewInput().
		Title("Where should worktrees live?").
		Description("Relative paths are resolved against the repository root. ~ expands to your home directory.").
		Value(&sf.input).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("directory required")
			}
			return nil
		})

	sf.form = huh.NewForm(huh.NewGroup(dirField))
	return sf
}

func (sf *SetupForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SetupForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(setupCompletedMsg); ok {
		sf.Completed = true
		if msg.err != nil {
			logging.Logger.Error("Failed to save config", "error", msg.err)
			sf.result.Error = msg.err
		} else {
			sf.result.WorktreeDir = msg.worktreeDir
		}
		return sf, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.Completed = true
			sf.result.Cancelled = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted {
		return sf, sf.saveConfigCmd()
	}

	return sf, cmd
}

func (sf *SetupForm) View() string {
	return sf.form.View()
}

// Result returns the form result
func (sf *SetupForm) Result() SetupFormResult {
	return sf.result
}

// saveConfigCmd writes the config file and resolves the final directory
func (sf *SetupForm) saveConfigCmd() tea.Cmd {
	return func() tea.Msg {
		cfg := &config.Config{WorktreeDir: filepath.Clean(strings.TrimSpace(sf.input))}
		if err := config.Save(sf.repoRoot, cfg); err != nil {
			return setupCompletedMsg{err: err}
		}
		return setupCompletedMsg{worktreeDir: cfg.ResolveWorktreeDir(sf.repoRoot)}
	}
}
