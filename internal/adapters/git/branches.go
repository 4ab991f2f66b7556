package git

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"ramal/internal/domain"
	"ramal/internal/logging"
)

// listBranches returns local branches in lexical name order with
// upstream presence and worktree cross-references filled in. Enumerated
// fresh on every call; creation and deletion invalidate prior snapshots.
func listBranches(repoRoot string) ([]domain.BranchRef, error) {
	logging.Logger.Debug("Listing branches", "repo_root", repoRoot)

	cmd := exec.Command("git", "for-each-ref",
		"--sort=refname",
		"--format=%(refname:short)\t%(upstream:short)",
		"refs/heads")
	cmd.Dir = repoRoot

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, domain.NewGitError("for-each-ref", output, err)
	}

	worktrees, err := listWorktrees(repoRoot)
	if err != nil {
		return nil, err
	}
	byBranch := make(map[string]string, len(worktrees))
	for _, wt := range worktrees {
		if wt.Branch != "" {
			byBranch[wt.Branch] = wt.Path
		}
	}

	var branches []domain.BranchRef
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line == "" {
			continue
		}
		name, upstream, _ := strings.Cut(line, "\t")
		branches = append(branches, domain.BranchRef{
			Name:         name,
			Upstream:     upstream,
			HasUpstream:  upstream != "",
			WorktreePath: byBranch[name],
		})
	}

	// for-each-ref already sorts, but the cross-reference above must not
	// depend on it
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })

	logging.Logger.Debug("Found branches", "count", len(branches))
	return branches, nil
}

// branchExists checks if a local branch exists
func branchExists(repoRoot, name string) bool {
	cmd := exec.Command("git", "show-ref", "--verify", "--quiet", fmt.Sprintf("refs/heads/%s", name))
	cmd.Dir = repoRoot
	return cmd.Run() == nil
}

// createBranch creates a branch pointing at the current HEAD
func createBranch(repoRoot, name string) error {
	logging.Logger.Info("Creating branch", "repo_root", repoRoot, "branch", name)

	cmd := exec.Command("git", "branch", name)
	cmd.Dir = repoRoot

	if output, err := cmd.CombinedOutput(); err != nil {
		if strings.Contains(string(output), "already exists") {
			return fmt.Errorf("%w: %s", domain.ErrBranchExists, name)
		}
		return domain.NewGitError("branch", output, err)
	}

	return nil
}

// deleteBranch force-deletes a local branch. Callers are responsible for
// the sync-status confirmation gate before reaching this point.
func deleteBranch(repoRoot, name string) error {
	logging.Logger.Info("Deleting branch", "repo_root", repoRoot, "branch", name)

	cmd := exec.Command("git", "branch", "-D", name)
	cmd.Dir = repoRoot

	if output, err := cmd.CombinedOutput(); err != nil {
		out := string(output)
		if strings.Contains(out, "checked out at") || strings.Contains(out, "used by worktree") {
			return fmt.Errorf("%w: %s", domain.ErrBranchCheckoutElsewhere, name)
		}
		if strings.Contains(out, "not found") {
			// Already gone, treat as done
			logging.Logger.Debug("Branch already deleted", "branch", name)
			return nil
		}
		return domain.NewGitError("branch -D", output, err)
	}

	return nil
}
