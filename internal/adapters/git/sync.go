package git

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"ramal/internal/domain"
	"ramal/internal/logging"
)

// evaluateSync compares a branch against its configured upstream and
// classifies the result. Read-only: it only inspects local refs, so the
// answer is as stale as the last fetch. That staleness is accepted
// behavior; ramal never fetches on its own.
func evaluateSync(ctx context.Context, repoRoot, branch string) (domain.SyncStatus, error) {
	logging.Logger.Debug("Evaluating sync status", "repo_root", repoRoot, "branch", branch)

	if !refResolves(ctx, repoRoot, "refs/heads/"+branch) {
		return domain.SyncStatus{}, fmt.Errorf("%w: refs/heads/%s", domain.ErrRefResolution, branch)
	}

	if !upstreamConfigured(ctx, repoRoot, branch) {
		logging.Logger.Debug("Branch has no upstream", "branch", branch)
		return domain.NoUpstream(), nil
	}

	// Upstream is configured; it must also resolve to a commit, which it
	// will not after e.g. a pruned remote branch.
	upstream := branch + "@{upstream}"
	if !refResolves(ctx, repoRoot, upstream) {
		return domain.SyncStatus{}, fmt.Errorf("%w: upstream of %s", domain.ErrRefResolution, branch)
	}

	ahead, behind, err := aheadBehind(ctx, repoRoot, branch, upstream)
	if err != nil {
		return domain.SyncStatus{}, err
	}

	status := domain.ClassifySync(ahead, behind)
	logging.Logger.Debug("Sync status evaluated", "branch", branch, "status", status.String())
	return status, nil
}

// upstreamConfigured reports whether the branch has an upstream set in
// the repository config.
func upstreamConfigured(ctx context.Context, repoRoot, branch string) bool {
	cmd := exec.CommandContext(ctx, "git", "config", "--get", fmt.Sprintf("branch.%s.merge", branch))
	cmd.Dir = repoRoot
	output, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(output)) != ""
}

// refResolves reports whether a revision resolves to a commit.
func refResolves(ctx context.Context, repoRoot, rev string) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--verify", "--quiet", rev+"^{commit}")
	cmd.Dir = repoRoot
	return cmd.Run() == nil
}

// aheadBehind counts commits on each side of the merge-base between the
// branch tip and its upstream tip.
func aheadBehind(ctx context.Context, repoRoot, branch, upstream string) (ahead, behind int, err error) {
	cmd := exec.CommandContext(ctx, "git", "rev-list", "--left-right", "--count",
		fmt.Sprintf("%s...%s", branch, upstream))
	cmd.Dir = repoRoot

	output, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s...%s", domain.ErrRefResolution, branch, upstream)
	}

	parts := strings.Fields(strings.TrimSpace(string(output)))
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: unexpected rev-list output %q", domain.ErrRefResolution, output)
	}

	if ahead, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: bad ahead count %q", domain.ErrRefResolution, parts[0])
	}
	if behind, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: bad behind count %q", domain.ErrRefResolution, parts[1])
	}

	return ahead, behind, nil
}
