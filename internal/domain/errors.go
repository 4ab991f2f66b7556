package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds surfaced to the UI. Every core operation returns one of
// these (possibly wrapped) or a *GitError; nothing panics past the
// service boundary.
var (
	ErrNotARepository          = errors.New("not a git repository")
	ErrInvalidBranchName       = errors.New("invalid branch name")
	ErrBranchExists            = errors.New("branch already exists")
	ErrPathConflict            = errors.New("worktree path already exists")
	ErrWorktreeNotFound        = errors.New("worktree not found")
	ErrWorktreeInUse           = errors.New("worktree is in use")
	ErrBranchCheckoutElsewhere = errors.New("branch is checked out in another worktree")
	ErrRefResolution           = errors.New("cannot resolve ref")
)

// GitError wraps a failed git invocation with its captured output.
type GitError struct {
	Op     string // git subcommand, e.g. "worktree add"
	Output string // trimmed combined output
	Err    error
}

func (e *GitError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("git %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("git %s failed: %v: %s", e.Op, e.Err, e.Output)
}

func (e *GitError) Unwrap() error { return e.Err }

// NewGitError builds a GitError from a command's combined output.
func NewGitError(op string, output []byte, err error) *GitError {
	return &GitError{Op: op, Output: strings.TrimSpace(string(output)), Err: err}
}
