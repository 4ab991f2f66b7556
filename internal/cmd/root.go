package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"ramal/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run     RunCmd     `cmd:"" help:"Start the ramal TUI (default)" default:"1"`
	List    ListCmd    `cmd:"list" help:"List worktrees with sync status"`
	Create  CreateCmd  `cmd:"create" help:"Create a branch and its worktree"`
	Delete  DeleteCmd  `cmd:"delete" help:"Remove a worktree (and optionally its branch)"`
	History HistoryCmd `cmd:"history" help:"Show recent create/delete operations"`
	Serve   ServeCmd   `cmd:"serve" help:"Serve the TUI over SSH"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
}

// AfterApply initializes logging after CLI parsing and wires dependencies
func (c *CLI) AfterApply() error {
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Propagate debug settings so spawned git processes and any child
	// ramal invocations land in the same log file.
	if c.Debug || c.DebugFile != "" {
		os.Setenv("RAMAL_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("RAMAL_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("RAMAL_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Container comes after logging so the GORM logger never sees a nil
	// logging.Logger.
	c.Container = NewContainer()
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
