package ui

import "ramal/internal/domain"

// Action messages emitted by the worktree list. The Model handles these
// in updateList() and switches state or runs the matching operation.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// NewWorktreeMsg requests showing the create dialog
type NewWorktreeMsg struct{}

// DeleteWorktreeMsg requests deleting the selected worktree
type DeleteWorktreeMsg struct {
	Item domain.WorktreeItem
}

// RefreshMsg requests re-reading the worktree list from git metadata
type RefreshMsg struct{}

// Result messages from asynchronous operations

// worktreesLoadedMsg carries a fresh listing (or the error that prevented one)
type worktreesLoadedMsg struct {
	items []domain.WorktreeItem
	err   error
}

// worktreeCreatedMsg is sent when worktree creation completes
type worktreeCreatedMsg struct {
	branch       string
	worktreePath string
	err          error
}

// worktreeDeletedMsg is sent when worktree deletion completes
type worktreeDeletedMsg struct {
	branchDeleted bool
	err           error
}

// setupCompletedMsg is sent when the first-run setup saved a config
type setupCompletedMsg struct {
	worktreeDir string
	err         error
}
