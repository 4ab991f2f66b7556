package cmd

import (
	"context"
	"fmt"

	"ramal/internal/logging"
	"ramal/internal/services"
)

// DeleteCmd removes a worktree without the TUI
type DeleteCmd struct {
	Path         string `arg:"" help:"Path of the worktree to remove"`
	DeleteBranch bool   `help:"Also delete the branch" short:"b"`
	Force        bool   `help:"Skip the unpushed-work confirmation prompt" short:"f"`
}

// Run executes the delete command
func (d *DeleteCmd) Run(cli *CLI) error {
	service, _, err := cli.Container.ServiceForCwd()
	if err != nil {
		return err
	}

	ctx := context.Background()
	params := services.DeleteParams{
		WorktreePath: d.Path,
		Confirmed:    d.Force,
		DeleteBranch: d.DeleteBranch,
	}

	result, err := service.Delete(ctx, params)
	if err != nil {
		return err
	}

	if result.PendingConfirmation {
		if !d.confirmDeletion(result) {
			fmt.Println("Cancelled")
			return nil
		}
		params.Confirmed = true
		result, err = service.Delete(ctx, params)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Removed worktree %s\n", d.Path)
	if result.BranchDeleted {
		fmt.Println("Branch deleted")
	}
	return nil
}

// confirmDeletion prompts before deleting unintegrated work
func (d *DeleteCmd) confirmDeletion(result *services.DeleteResult) bool {
	logging.Logger.Debug("Prompting user for confirmation", "path", d.Path)
	fmt.Printf("WARNING: branch is %s its upstream\n", result.Status.String())
	fmt.Println("Removing this worktree discards work the upstream has not integrated.")
	fmt.Print("\nContinue? (y/N): ")

	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		logging.Logger.Info("User cancelled worktree deletion", "path", d.Path)
		return false
	}
	logging.Logger.Info("User confirmed worktree deletion", "path", d.Path)
	return true
}
