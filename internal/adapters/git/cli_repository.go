package git

import (
	"context"

	"ramal/internal/domain"
	"ramal/internal/ports"
)

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct{}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{}
}

// RepoInspector methods

// Discover implements RepoInspector.Discover
func (r *CLIRepository) Discover(startDir string) (string, error) {
	return discover(startDir)
}

// HeadCommit implements RepoInspector.HeadCommit
func (r *CLIRepository) HeadCommit(repoRoot string) (string, error) {
	return headCommit(repoRoot)
}

// BranchReader methods

// ListBranches implements BranchReader.ListBranches
func (r *CLIRepository) ListBranches(repoRoot string) ([]domain.BranchRef, error) {
	return listBranches(repoRoot)
}

// BranchExists implements BranchReader.BranchExists
func (r *CLIRepository) BranchExists(repoRoot, name string) bool {
	return branchExists(repoRoot, name)
}

// BranchWriter methods

// CreateBranch implements BranchWriter.CreateBranch
func (r *CLIRepository) CreateBranch(repoRoot, name string) error {
	return createBranch(repoRoot, name)
}

// DeleteBranch implements BranchWriter.DeleteBranch
func (r *CLIRepository) DeleteBranch(repoRoot, name string) error {
	return deleteBranch(repoRoot, name)
}

// WorktreeManager methods

// ListWorktrees implements WorktreeManager.ListWorktrees
func (r *CLIRepository) ListWorktrees(repoRoot string) ([]domain.WorktreeRecord, error) {
	return listWorktrees(repoRoot)
}

// AddWorktree implements WorktreeManager.AddWorktree
func (r *CLIRepository) AddWorktree(repoRoot, worktreePath, branch string) error {
	return addWorktree(repoRoot, worktreePath, branch)
}

// RemoveWorktree implements WorktreeManager.RemoveWorktree
func (r *CLIRepository) RemoveWorktree(repoRoot, worktreePath string) error {
	return removeWorktree(repoRoot, worktreePath)
}

// SyncEvaluator methods

// EvaluateSync implements SyncEvaluator.EvaluateSync
func (r *CLIRepository) EvaluateSync(ctx context.Context, repoRoot, branch string) (domain.SyncStatus, error) {
	return evaluateSync(ctx, repoRoot, branch)
}

// BranchValidator methods

// ValidateBranchName implements BranchValidator.ValidateBranchName
func (r *CLIRepository) ValidateBranchName(name string) error {
	return validateBranchName(name)
}

// SanitizeBranchName implements BranchValidator.SanitizeBranchName
func (r *CLIRepository) SanitizeBranchName(name string) (string, error) {
	return sanitizeBranchName(name)
}
