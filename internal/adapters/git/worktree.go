package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"ramal/internal/domain"
	"ramal/internal/logging"
)

// listWorktrees enumerates worktrees registered in git metadata by
// parsing `git worktree list --porcelain`.
func listWorktrees(repoRoot string) ([]domain.WorktreeRecord, error) {
	logging.Logger.Debug("Listing worktrees", "repo_root", repoRoot)

	cmd := exec.Command("git", "worktree", "list", "--porcelain")
	cmd.Dir = repoRoot

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, domain.NewGitError("worktree list", output, err)
	}

	records := parseWorktreeList(string(output))
	logging.Logger.Debug("Found worktrees", "count", len(records))
	return records, nil
}

// parseWorktreeList parses git worktree list --porcelain output.
// Entries are blank-line separated; the first entry is the main
// working directory.
func parseWorktreeList(output string) []domain.WorktreeRecord {
	var records []domain.WorktreeRecord
	var current domain.WorktreeRecord
	first := true

	flush := func() {
		if current.Path != "" {
			current.IsMain = first
			first = false
			records = append(records, current)
		}
		current = domain.WorktreeRecord{}
	}

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current.Path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "branch "):
			current.Branch = strings.TrimPrefix(line, "branch refs/heads/")
		case line == "locked" || strings.HasPrefix(line, "locked "):
			current.Locked = true
		}
	}
	flush()

	return records
}

// addWorktree checks out an existing branch into a new worktree at the
// given path.
func addWorktree(repoRoot, worktreePath, branch string) error {
	logging.Logger.Info("Adding worktree", "repo_root", repoRoot, "path", worktreePath, "branch", branch)

	// Ensure the parent directory exists
	if err := os.MkdirAll(filepath.Dir(worktreePath), 0755); err != nil {
		return domain.NewGitError("worktree add", []byte(err.Error()), err)
	}

	cmd := exec.Command("git", "worktree", "add", worktreePath, branch)
	cmd.Dir = repoRoot

	if output, err := cmd.CombinedOutput(); err != nil {
		out := string(output)
		if strings.Contains(out, "already exists") {
			return fmt.Errorf("%w: %s", domain.ErrPathConflict, worktreePath)
		}
		return domain.NewGitError("worktree add", output, err)
	}

	logging.Logger.Info("Worktree added", "path", worktreePath, "branch", branch)
	return nil
}

// removeWorktree removes a worktree directory together with its git
// administrative metadata. No --force: a dirty or locked worktree must
// fail here rather than silently discard work, and git leaves its
// metadata consistent with the still-present directory on failure.
func removeWorktree(repoRoot, worktreePath string) error {
	logging.Logger.Info("Removing worktree", "repo_root", repoRoot, "path", worktreePath)

	cmd := exec.Command("git", "worktree", "remove", worktreePath)
	cmd.Dir = repoRoot

	if output, err := cmd.CombinedOutput(); err != nil {
		out := string(output)
		switch {
		case strings.Contains(out, "is not a working tree"):
			return fmt.Errorf("%w: %s", domain.ErrWorktreeNotFound, worktreePath)
		case strings.Contains(out, "locked"), strings.Contains(out, "contains modified or untracked files"):
			return fmt.Errorf("%w: %s", domain.ErrWorktreeInUse, worktreePath)
		}
		return domain.NewGitError("worktree remove", output, err)
	}

	logging.Logger.Info("Worktree removed", "path", worktreePath)
	return nil
}
