package services

import "ramal/internal/domain"

// CreateParams contains parameters for creating a worktree
type CreateParams struct {
	// BranchName is the branch to create. Validated before any mutation.
	BranchName string
	// WorktreeDir overrides the configured worktree directory when set.
	WorktreeDir string
}

// CreateResult contains the result of worktree creation
type CreateResult struct {
	Branch       string
	WorktreePath string
}

// DeleteParams contains parameters for deleting a worktree
type DeleteParams struct {
	// WorktreePath identifies the worktree to remove.
	WorktreePath string
	// Confirmed acknowledges unpushed-work warnings. Without it, deletion
	// of a behind or diverged branch stops at PendingConfirmation.
	Confirmed bool
	// DeleteBranch also removes the branch after the worktree is gone.
	DeleteBranch bool
}

// DeleteResult contains the result of worktree deletion
type DeleteResult struct {
	// Removed is true once the worktree is actually gone.
	Removed bool
	// BranchDeleted is true when the branch was removed as well.
	BranchDeleted bool
	// PendingConfirmation is true when the delete stopped to ask for
	// confirmation. Nothing was mutated in that case.
	PendingConfirmation bool
	// Status is the sync evaluation that drove the confirmation decision.
	Status domain.SyncStatus
}
