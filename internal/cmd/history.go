package cmd

import (
	"context"
	"fmt"
)

// HistoryCmd prints recent journal entries, newest first
type HistoryCmd struct {
	Limit int `help:"Maximum number of entries to show" default:"20"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	if cli.Container.Journal == nil {
		fmt.Println("History unavailable: journal database could not be opened")
		return nil
	}

	records, err := cli.Container.Journal.Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No recorded operations")
		return nil
	}

	for _, rec := range records {
		line := fmt.Sprintf("%s  %-6s  %-11s  %s",
			rec.OccurredAt.Local().Format("2006-01-02 15:04:05"),
			rec.Kind,
			rec.Outcome,
			rec.Branch,
		)
		if rec.Detail != "" {
			line += "  (" + rec.Detail + ")"
		}
		fmt.Println(line)
	}

	return nil
}
