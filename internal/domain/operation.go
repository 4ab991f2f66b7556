package domain

import "time"

// OperationKind identifies a lifecycle operation in the journal.
type OperationKind string

const (
	OpCreate OperationKind = "create"
	OpDelete OperationKind = "delete"
)

// OperationOutcome records how an operation ended.
type OperationOutcome string

const (
	OutcomeSuccess    OperationOutcome = "success"
	OutcomeFailed     OperationOutcome = "failed"
	OutcomeRolledBack OperationOutcome = "rolled_back"
)

// OperationRecord is an audit entry for a completed create or delete.
// The journal is advisory only; git metadata stays the source of truth
// for what worktrees and branches exist.
type OperationRecord struct {
	ID           string
	Kind         OperationKind
	Branch       string
	WorktreePath string
	RepoRoot     string
	Outcome      OperationOutcome
	Detail       string // error text or sync status at decision time
	OccurredAt   time.Time
}
