package git

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramal/internal/domain"
)

func TestListBranches_LexicalOrder(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "zebra")
	runGit(t, repoPath, "branch", "alpha")

	branches, err := listBranches(repoPath)

	require.NoError(t, err)
	require.Len(t, branches, 3)
	assert.Equal(t, "alpha", branches[0].Name)
	assert.Equal(t, "main", branches[1].Name)
	assert.Equal(t, "zebra", branches[2].Name)
}

func TestListBranches_UpstreamPresence(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "tracked")
	runGit(t, repoPath, "branch", "untracked")
	setUpstream(t, repoPath, "tracked")

	branches, err := listBranches(repoPath)

	require.NoError(t, err)

	byName := make(map[string]domain.BranchRef)
	for _, b := range branches {
		byName[b.Name] = b
	}

	assert.True(t, byName["tracked"].HasUpstream)
	assert.Equal(t, "origin/tracked", byName["tracked"].Upstream)
	assert.False(t, byName["untracked"].HasUpstream)
}

func TestListBranches_WorktreeCrossReference(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "feature-x")
	worktreePath := filepath.Join(t.TempDir(), "feature-x")
	require.NoError(t, addWorktree(repoPath, worktreePath, "feature-x"))

	branches, err := listBranches(repoPath)

	require.NoError(t, err)

	byName := make(map[string]domain.BranchRef)
	for _, b := range branches {
		byName[b.Name] = b
	}

	assert.Equal(t, worktreePath, byName["feature-x"].WorktreePath)
	assert.NotEmpty(t, byName["main"].WorktreePath, "main is checked out in the main worktree")
}

func TestBranchExists(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "feature-x")

	assert.True(t, branchExists(repoPath, "feature-x"))
	assert.False(t, branchExists(repoPath, "nope"))
}

func TestCreateBranch_PointsAtHead(t *testing.T) {
	repoPath := setupTestRepo(t)

	err := createBranch(repoPath, "feature-x")

	require.NoError(t, err)
	head, err := headCommit(repoPath)
	require.NoError(t, err)
	tip := runGit(t, repoPath, "rev-parse", "refs/heads/feature-x")
	assert.Contains(t, tip, head)
}

func TestCreateBranch_AlreadyExists(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "feature-x")

	err := createBranch(repoPath, "feature-x")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBranchExists)
}

func TestDeleteBranch(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "feature-x")

	err := deleteBranch(repoPath, "feature-x")

	require.NoError(t, err)
	assert.False(t, branchExists(repoPath, "feature-x"))
}

func TestDeleteBranch_CheckedOutInWorktree(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "feature-x")
	worktreePath := filepath.Join(t.TempDir(), "feature-x")
	require.NoError(t, addWorktree(repoPath, worktreePath, "feature-x"))

	err := deleteBranch(repoPath, "feature-x")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBranchCheckoutElsewhere)
	assert.True(t, branchExists(repoPath, "feature-x"))
}

func TestDeleteBranch_AlreadyGone(t *testing.T) {
	repoPath := setupTestRepo(t)

	// Idempotent: deleting a branch that is already gone is not an error
	err := deleteBranch(repoPath, "never-existed")

	assert.NoError(t, err)
}
