package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramal/internal/domain"
)

func TestParseWorktreeList(t *testing.T) {
	output := `worktree /home/user/repo
HEAD 1111111111111111111111111111111111111111
branch refs/heads/main

worktree /home/user/worktrees/feature-x
HEAD 2222222222222222222222222222222222222222
branch refs/heads/feature-x

worktree /home/user/worktrees/spike
HEAD 3333333333333333333333333333333333333333
detached

worktree /home/user/worktrees/locked-one
HEAD 4444444444444444444444444444444444444444
branch refs/heads/locked-one
locked reason text
`

	records := parseWorktreeList(output)

	require.Len(t, records, 4)

	assert.Equal(t, "/home/user/repo", records[0].Path)
	assert.Equal(t, "main", records[0].Branch)
	assert.True(t, records[0].IsMain)

	assert.Equal(t, "/home/user/worktrees/feature-x", records[1].Path)
	assert.Equal(t, "feature-x", records[1].Branch)
	assert.False(t, records[1].IsMain)

	assert.Empty(t, records[2].Branch, "detached worktree has no branch")

	assert.True(t, records[3].Locked)
}

func TestParseWorktreeList_Empty(t *testing.T) {
	assert.Empty(t, parseWorktreeList(""))
}

func TestListWorktrees_MainOnly(t *testing.T) {
	repoPath := setupTestRepo(t)

	records, err := listWorktrees(repoPath)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].IsMain)
	assert.Equal(t, "main", records[0].Branch)
}

func TestAddWorktree_ChecksOutBranch(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "feature-x")
	worktreePath := filepath.Join(t.TempDir(), "feature-x")

	err := addWorktree(repoPath, worktreePath, "feature-x")

	require.NoError(t, err)
	assert.DirExists(t, worktreePath)

	records, err := listWorktrees(repoPath)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "feature-x", records[1].Branch)
}

func TestAddWorktree_PathOccupiedByFile(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "feature-x")

	worktreePath := filepath.Join(t.TempDir(), "feature-x")
	require.NoError(t, os.WriteFile(worktreePath, []byte("in the way"), 0644))

	err := addWorktree(repoPath, worktreePath, "feature-x")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPathConflict)
}

func TestRemoveWorktree_CleansDirectoryAndMetadata(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "feature-x")
	worktreePath := filepath.Join(t.TempDir(), "feature-x")
	require.NoError(t, addWorktree(repoPath, worktreePath, "feature-x"))

	err := removeWorktree(repoPath, worktreePath)

	require.NoError(t, err)
	assert.NoDirExists(t, worktreePath)

	records, listErr := listWorktrees(repoPath)
	require.NoError(t, listErr)
	assert.Len(t, records, 1, "only the main worktree remains")
}

func TestRemoveWorktree_NotFound(t *testing.T) {
	repoPath := setupTestRepo(t)

	err := removeWorktree(repoPath, filepath.Join(t.TempDir(), "never-existed"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorktreeNotFound)
}

func TestRemoveWorktree_DirtyWorktreeRefused(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "feature-x")
	worktreePath := filepath.Join(t.TempDir(), "feature-x")
	require.NoError(t, addWorktree(repoPath, worktreePath, "feature-x"))

	// Untracked file makes the worktree dirty; removal must refuse and
	// leave everything in place.
	require.NoError(t, os.WriteFile(filepath.Join(worktreePath, "wip.txt"), []byte("wip"), 0644))

	err := removeWorktree(repoPath, worktreePath)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorktreeInUse)
	assert.DirExists(t, worktreePath)

	records, listErr := listWorktrees(repoPath)
	require.NoError(t, listErr)
	assert.Len(t, records, 2, "metadata still lists the refused worktree")
}

func TestRemoveWorktree_LockedWorktreeRefused(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "branch", "feature-x")
	worktreePath := filepath.Join(t.TempDir(), "feature-x")
	require.NoError(t, addWorktree(repoPath, worktreePath, "feature-x"))

	runGit(t, repoPath, "worktree", "lock", worktreePath)

	err := removeWorktree(repoPath, worktreePath)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorktreeInUse)
	assert.DirExists(t, worktreePath)
}
