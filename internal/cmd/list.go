package cmd

import (
	"context"
	"fmt"
)

// ListCmd prints worktrees with sync status, one per line
type ListCmd struct{}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	service, _, err := cli.Container.ServiceForCwd()
	if err != nil {
		return err
	}

	items, err := service.List(context.Background())
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("No worktrees")
		return nil
	}

	for _, item := range items {
		branch := item.Record.Branch
		if branch == "" {
			branch = "(detached)"
		}

		marker := " "
		if item.Record.IsMain {
			marker = "*"
		}

		fmt.Printf("%s %-30s %-20s %s\n", marker, branch, "["+item.Status.String()+"]", item.Record.Path)
	}

	return nil
}
