package domain

import "fmt"

// SyncKind is the closed set of sync states a branch can be in relative
// to its upstream. Keeping this a tagged enum (rather than free-form
// strings) lets the delete-confirmation gate switch exhaustively.
type SyncKind int

const (
	SyncInSync SyncKind = iota
	SyncAhead
	SyncBehind
	SyncDiverged
	SyncNoUpstream
)

// SyncStatus describes how a local branch relates to its upstream as of
// the last fetch. Derived on demand, never persisted; the counts are only
// as fresh as the local remote-tracking ref.
type SyncStatus struct {
	Kind   SyncKind
	Ahead  int // commits on the branch but not the upstream
	Behind int // commits on the upstream but not the branch
}

// ClassifySync maps ahead/behind counts to a SyncStatus.
func ClassifySync(ahead, behind int) SyncStatus {
	switch {
	case ahead == 0 && behind == 0:
		return SyncStatus{Kind: SyncInSync}
	case behind == 0:
		return SyncStatus{Kind: SyncAhead, Ahead: ahead}
	case ahead == 0:
		return SyncStatus{Kind: SyncBehind, Behind: behind}
	default:
		return SyncStatus{Kind: SyncDiverged, Ahead: ahead, Behind: behind}
	}
}

// NoUpstream is the status for branches without a configured upstream.
func NoUpstream() SyncStatus {
	return SyncStatus{Kind: SyncNoUpstream}
}

// RequiresConfirmation reports whether deleting a worktree on a branch in
// this state needs an explicit user confirmation first. Ahead-only is not
// gated: the remote has nothing the local branch lacks, so deletion loses
// nothing the upstream ever saw.
func (s SyncStatus) RequiresConfirmation() bool {
	switch s.Kind {
	case SyncBehind, SyncDiverged:
		return true
	case SyncInSync, SyncAhead, SyncNoUpstream:
		return false
	}
	return false
}

// String renders a short human-readable form for lists and logs.
func (s SyncStatus) String() string {
	switch s.Kind {
	case SyncInSync:
		return "in sync"
	case SyncAhead:
		return fmt.Sprintf("ahead %d", s.Ahead)
	case SyncBehind:
		return fmt.Sprintf("behind %d", s.Behind)
	case SyncDiverged:
		return fmt.Sprintf("diverged +%d/-%d", s.Ahead, s.Behind)
	case SyncNoUpstream:
		return "no upstream"
	}
	return "unknown"
}
