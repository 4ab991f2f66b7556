package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ramal/internal/logging"
	"ramal/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct{}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	service, cfg, err := cli.Container.ServiceForCwd()
	if err != nil {
		return err
	}

	// No config yet means the model opens with the first-run setup
	var worktreeDir string
	if cfg != nil {
		worktreeDir = cfg.ResolveWorktreeDir(service.RepoRoot())
	}

	logging.Logger.Info("Starting TUI program",
		"repo_root", service.RepoRoot(),
		"worktree_dir", worktreeDir,
	)

	p := tea.NewProgram(
		ui.NewModel(service, worktreeDir),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
