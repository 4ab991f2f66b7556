package cmd

import (
	"fmt"
	"os"

	adaptergit "ramal/internal/adapters/git"
	adapterstorage "ramal/internal/adapters/storage"
	"ramal/internal/config"
	"ramal/internal/logging"
	"ramal/internal/ports"
	"ramal/internal/services"
)

// Container holds the shared dependencies for all commands
type Container struct {
	GitRepo ports.GitRepository
	Journal ports.OperationJournal
}

// NewContainer wires the adapters. The journal is advisory: when its
// database cannot be opened, commands run without history rather than
// failing.
func NewContainer() *Container {
	var journal ports.OperationJournal
	sqliteJournal, err := adapterstorage.NewSQLiteJournal(config.JournalDBPath())
	if err != nil {
		logging.Logger.Warn("Failed to open operation journal, continuing without history",
			"error", err,
			"path", config.JournalDBPath())
	} else {
		journal = sqliteJournal
	}

	return &Container{
		GitRepo: adaptergit.NewCLIRepository(),
		Journal: journal,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Journal != nil {
		return c.Journal.Close()
	}
	return nil
}

// ServiceForCwd discovers the repository containing the working
// directory and builds the lifecycle service for it. The returned config
// is nil when the repository has no config file yet.
func (c *Container) ServiceForCwd() (*services.WorktreeService, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	repoRoot, err := c.GitRepo.Discover(cwd)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(repoRoot)
	if err != nil {
		return nil, nil, err
	}

	var worktreeDir string
	if cfg != nil {
		worktreeDir = cfg.ResolveWorktreeDir(repoRoot)
	}

	return services.NewWorktreeService(c.GitRepo, c.Journal, repoRoot, worktreeDir), cfg, nil
}
