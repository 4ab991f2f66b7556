package ports

import (
	"context"

	"ramal/internal/domain"
)

// RepoInspector locates and queries repositories
type RepoInspector interface {
	// Discover walks startDir and its ancestors looking for a repository
	// root. Returns domain.ErrNotARepository when none is found.
	Discover(startDir string) (string, error)
	HeadCommit(repoRoot string) (string, error)
}

// BranchReader enumerates and inspects local branches
type BranchReader interface {
	// ListBranches returns local branches in lexical name order with
	// upstream presence and worktree cross-references filled in.
	ListBranches(repoRoot string) ([]domain.BranchRef, error)
	BranchExists(repoRoot, name string) bool
}

// BranchWriter mutates local branches
type BranchWriter interface {
	CreateBranch(repoRoot, name string) error
	DeleteBranch(repoRoot, name string) error
}

// WorktreeManager handles worktree lifecycle
type WorktreeManager interface {
	ListWorktrees(repoRoot string) ([]domain.WorktreeRecord, error)
	AddWorktree(repoRoot, worktreePath, branch string) error
	RemoveWorktree(repoRoot, worktreePath string) error
}

// SyncEvaluator compares a branch against its upstream
type SyncEvaluator interface {
	// EvaluateSync never mutates the repository and never touches the
	// network; the result is only as fresh as the last fetch.
	EvaluateSync(ctx context.Context, repoRoot, branch string) (domain.SyncStatus, error)
}

// BranchValidator validates and sanitizes branch names
type BranchValidator interface {
	ValidateBranchName(name string) error
	SanitizeBranchName(name string) (string, error)
}

// GitRepository is the composite interface
type GitRepository interface {
	BranchReader
	BranchValidator
	BranchWriter
	RepoInspector
	SyncEvaluator
	WorktreeManager
}
