package git

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramal/internal/domain"
)

func TestEvaluateSync_NoUpstream(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "feature-x")

	status, err := evaluateSync(context.Background(), repoPath, "feature-x")

	require.NoError(t, err)
	assert.Equal(t, domain.SyncNoUpstream, status.Kind)
}

func TestEvaluateSync_InSync(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "feature-x")
	setUpstream(t, repoPath, "feature-x")

	status, err := evaluateSync(context.Background(), repoPath, "feature-x")

	require.NoError(t, err)
	assert.Equal(t, domain.SyncInSync, status.Kind)
}

func TestEvaluateSync_Ahead(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "checkout", "-b", "feature-x")
	setUpstream(t, repoPath, "feature-x")

	// Two local commits the upstream has not seen
	commitFile(t, repoPath, "a.txt", "one")
	commitFile(t, repoPath, "a.txt", "two")

	status, err := evaluateSync(context.Background(), repoPath, "feature-x")

	require.NoError(t, err)
	assert.Equal(t, domain.SyncAhead, status.Kind)
	assert.Equal(t, 2, status.Ahead)
	assert.Equal(t, 0, status.Behind)
}

func TestEvaluateSync_Behind(t *testing.T) {
	repoPath := setupTestRepo(t)
	base := strings.TrimSpace(runGit(t, repoPath, "rev-parse", "HEAD"))

	// Advance main three commits, then point the branch back at the base
	// and its upstream at the new tip: local is behind by three.
	commitFile(t, repoPath, "a.txt", "one")
	commitFile(t, repoPath, "a.txt", "two")
	commitFile(t, repoPath, "a.txt", "three")
	tip := strings.TrimSpace(runGit(t, repoPath, "rev-parse", "HEAD"))

	runGit(t, repoPath, "branch", "feature-x", base)
	setUpstream(t, repoPath, "feature-x")
	moveUpstream(t, repoPath, "feature-x", tip)

	status, err := evaluateSync(context.Background(), repoPath, "feature-x")

	require.NoError(t, err)
	assert.Equal(t, domain.SyncBehind, status.Kind)
	assert.Equal(t, 3, status.Behind)
	assert.Equal(t, 0, status.Ahead)
}

func TestEvaluateSync_Diverged(t *testing.T) {
	repoPath := setupTestRepo(t)
	base := strings.TrimSpace(runGit(t, repoPath, "rev-parse", "HEAD"))

	// One commit on main (becomes the upstream tip), one divergent
	// commit on the branch.
	commitFile(t, repoPath, "a.txt", "remote side")
	tip := strings.TrimSpace(runGit(t, repoPath, "rev-parse", "HEAD"))

	runGit(t, repoPath, "checkout", "-b", "feature-x", base)
	commitFile(t, repoPath, "b.txt", "local side")
	setUpstream(t, repoPath, "feature-x")
	moveUpstream(t, repoPath, "feature-x", tip)

	status, err := evaluateSync(context.Background(), repoPath, "feature-x")

	require.NoError(t, err)
	assert.Equal(t, domain.SyncDiverged, status.Kind)
	assert.Equal(t, 1, status.Ahead)
	assert.Equal(t, 1, status.Behind)
}

func TestEvaluateSync_UnknownBranch(t *testing.T) {
	repoPath := setupTestRepo(t)

	_, err := evaluateSync(context.Background(), repoPath, "no-such-branch")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRefResolution)
}

func TestEvaluateSync_DanglingUpstream(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "feature-x")

	// Upstream configured but the tracking ref never created, as after a
	// pruned remote branch.
	runGit(t, repoPath, "config", "branch.feature-x.remote", "origin")
	runGit(t, repoPath, "config", "branch.feature-x.merge", "refs/heads/feature-x")

	_, err := evaluateSync(context.Background(), repoPath, "feature-x")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRefResolution)
}
