package domain

// BranchRef is a local branch with the metadata the UI needs: whether an
// upstream is configured and which worktree (if any) has it checked out.
type BranchRef struct {
	Name         string
	Upstream     string // remote-tracking ref short name, empty if none
	HasUpstream  bool
	WorktreePath string // empty if the branch has no worktree
}

// WorktreeRecord is one entry of `git worktree list`, cross-referenced
// with its checked-out branch. Records are re-read from git metadata for
// every operation; nothing here is cached across mutations.
type WorktreeRecord struct {
	Path   string
	Branch string // empty for detached HEAD
	Locked bool   // the worktree directory is locked by git
	IsMain bool   // the primary working directory, never managed by ramal
}

// WorktreeItem pairs a record with its branch's sync status for display.
type WorktreeItem struct {
	Record WorktreeRecord
	Status SyncStatus
}
