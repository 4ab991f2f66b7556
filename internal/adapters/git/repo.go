package git

import (
	"fmt"
	"os/exec"
	"strings"

	"ramal/internal/domain"
	"ramal/internal/logging"
)

// discover searches startDir and its ancestors for a repository root.
// git itself does the ancestor walk; we only classify the failure.
func discover(startDir string) (string, error) {
	logging.Logger.Debug("Discovering repository", "start_dir", startDir)

	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = startDir

	output, err := cmd.Output()
	if err != nil {
		logging.Logger.Debug("No repository found", "start_dir", startDir)
		return "", fmt.Errorf("%w: searched %s and ancestors", domain.ErrNotARepository, startDir)
	}

	repoRoot := strings.TrimSpace(string(output))
	logging.Logger.Info("Found git repository", "repo_root", repoRoot)
	return repoRoot, nil
}

// headCommit returns the commit hash HEAD points at.
func headCommit(repoRoot string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	cmd.Dir = repoRoot

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: HEAD", domain.ErrRefResolution)
	}
	return strings.TrimSpace(string(output)), nil
}
