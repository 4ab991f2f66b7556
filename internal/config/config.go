package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the per-repository configuration file, stored at the
// repository root.
const FileName = ".ramal.toml"

// DefaultWorktreeDir is the suggested worktree location on first-run
// setup: a sibling directory of the repository.
const DefaultWorktreeDir = "../worktrees"

// Config is the per-repository configuration. One required field: where
// managed worktrees live. Loaded once at startup and immutable for the
// rest of the session.
type Config struct {
	WorktreeDir string `toml:"worktree_dir"`
}

// Load reads the config file from the repository root. Returns
// (nil, nil) when the file does not exist so callers can trigger the
// first-run setup instead of failing.
func Load(repoRoot string) (*Config, error) {
	path := filepath.Join(repoRoot, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	if cfg.WorktreeDir == "" {
		return nil, fmt.Errorf("invalid %s: worktree_dir is required", FileName)
	}

	return &cfg, nil
}

// Save writes the config file to the repository root.
func Save(repoRoot string, cfg *Config) error {
	if cfg.WorktreeDir == "" {
		return fmt.Errorf("worktree_dir is required")
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(repoRoot, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}

	return nil
}

// ResolveWorktreeDir returns the absolute worktree storage directory,
// resolving a relative configured path against the repository root.
func (c *Config) ResolveWorktreeDir(repoRoot string) string {
	dir := ExpandPath(c.WorktreeDir)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(repoRoot, dir)
	}
	return filepath.Clean(dir)
}
