package cmd

import (
	"context"
	"fmt"

	"ramal/internal/config"
	"ramal/internal/services"
)

// CreateCmd creates a branch and its worktree without the TUI
type CreateCmd struct {
	Branch      string `arg:"" help:"Branch name to create"`
	WorktreeDir string `help:"Override the configured worktree directory"`
}

// Run executes the create command
func (c *CreateCmd) Run(cli *CLI) error {
	service, cfg, err := cli.Container.ServiceForCwd()
	if err != nil {
		return err
	}

	worktreeDir := c.WorktreeDir
	if worktreeDir == "" {
		if cfg == nil {
			return fmt.Errorf("no %s found; run the TUI once to set up, or pass --worktree-dir", config.FileName)
		}
		worktreeDir = cfg.ResolveWorktreeDir(service.RepoRoot())
	}

	result, err := service.Create(context.Background(), services.CreateParams{
		BranchName:  c.Branch,
		WorktreeDir: worktreeDir,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created branch '%s' with worktree at %s\n", result.Branch, result.WorktreePath)
	return nil
}
