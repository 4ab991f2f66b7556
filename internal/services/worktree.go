package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ramal/internal/domain"
	"ramal/internal/logging"
	"ramal/internal/ports"
)

// syncWorkers caps concurrent sync evaluations during List. Each
// evaluation shells out to git a few times; unbounded fan-out on a repo
// with many worktrees just thrashes the process table.
const syncWorkers = 8

// WorktreeService drives the worktree lifecycle: create branch plus
// worktree as one unit, list with sync status, and delete behind a
// confirmation gate for unpushed work. Only worktrees under the
// configured worktree directory are managed; the main working directory
// is always visible but never deletable.
type WorktreeService struct {
	gitRepo     ports.GitRepository
	journal     ports.OperationJournal
	repoRoot    string
	worktreeDir string
}

// NewWorktreeService creates a new WorktreeService rooted at repoRoot.
// journal may be nil; journaling is advisory and never fails an
// operation. worktreeDir is the resolved managed directory; empty means
// the repository has not been set up yet and nothing is scoped out.
func NewWorktreeService(gitRepo ports.GitRepository, journal ports.OperationJournal, repoRoot, worktreeDir string) *WorktreeService {
	return &WorktreeService{
		gitRepo:     gitRepo,
		journal:     journal,
		repoRoot:    repoRoot,
		worktreeDir: worktreeDir,
	}
}

// RepoRoot returns the repository root the service operates on
func (s *WorktreeService) RepoRoot() string {
	return s.repoRoot
}

// SetWorktreeDir scopes the service to a managed directory. Called once
// after the first-run setup resolves one.
func (s *WorktreeService) SetWorktreeDir(dir string) {
	s.worktreeDir = dir
}

// managed reports whether a worktree record belongs to this service.
// The main working directory always does; everything else must live
// under the configured worktree directory.
func (s *WorktreeService) managed(rec domain.WorktreeRecord) bool {
	if rec.IsMain || s.worktreeDir == "" {
		return true
	}
	return pathWithin(rec.Path, s.worktreeDir)
}

// pathWithin reports whether path is strictly inside dir
func pathWithin(path, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// ValidateBranchName validates a branch name
func (s *WorktreeService) ValidateBranchName(name string) error {
	return s.gitRepo.ValidateBranchName(name)
}

// SanitizeBranchName sanitizes a branch name
func (s *WorktreeService) SanitizeBranchName(name string) (string, error) {
	return s.gitRepo.SanitizeBranchName(name)
}

// Create creates a branch at HEAD and a worktree checking it out, as one
// unit. If the worktree step fails the just-created branch is deleted
// again, so a failed create leaves no debris behind.
func (s *WorktreeService) Create(ctx context.Context, params CreateParams) (*CreateResult, error) {
	logging.Logger.Info("Creating worktree",
		"branch", params.BranchName,
		"repo_root", s.repoRoot,
	)

	if err := s.gitRepo.ValidateBranchName(params.BranchName); err != nil {
		return nil, err
	}

	if s.gitRepo.BranchExists(s.repoRoot, params.BranchName) {
		return nil, fmt.Errorf("%w: %s", domain.ErrBranchExists, params.BranchName)
	}

	worktreePath := filepath.Join(params.WorktreeDir, filepath.FromSlash(params.BranchName))

	// An occupied target path must fail before the branch is created.
	// git worktree add would accept an existing empty directory, and for
	// a non-empty one we would create a branch only to roll it back.
	if _, err := os.Stat(worktreePath); err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPathConflict, worktreePath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check worktree path: %w", err)
	}

	if err := s.gitRepo.CreateBranch(s.repoRoot, params.BranchName); err != nil {
		s.journalAppend(ctx, domain.OpCreate, params.BranchName, worktreePath, domain.OutcomeFailed, err.Error())
		return nil, err
	}

	if err := s.gitRepo.AddWorktree(s.repoRoot, worktreePath, params.BranchName); err != nil {
		// Roll back the branch so the failed create is invisible. A
		// failed rollback is logged but the original error wins.
		if rbErr := s.gitRepo.DeleteBranch(s.repoRoot, params.BranchName); rbErr != nil {
			logging.Logger.Error("Branch rollback failed after worktree add error",
				"branch", params.BranchName,
				"error", rbErr,
			)
		}
		s.journalAppend(ctx, domain.OpCreate, params.BranchName, worktreePath, domain.OutcomeRolledBack, err.Error())
		return nil, err
	}

	s.journalAppend(ctx, domain.OpCreate, params.BranchName, worktreePath, domain.OutcomeSuccess, "")
	logging.Logger.Info("Worktree created",
		"branch", params.BranchName,
		"worktree_path", worktreePath,
	)

	return &CreateResult{
		Branch:       params.BranchName,
		WorktreePath: worktreePath,
	}, nil
}

// List re-reads worktrees from git metadata and evaluates each branch's
// sync status concurrently. Worktrees registered outside the managed
// directory are left alone and not listed. A failed evaluation degrades
// that one entry to no-upstream instead of failing the whole listing.
func (s *WorktreeService) List(ctx context.Context) ([]domain.WorktreeItem, error) {
	all, err := s.gitRepo.ListWorktrees(s.repoRoot)
	if err != nil {
		return nil, err
	}

	records := all[:0:0]
	for _, rec := range all {
		if s.managed(rec) {
			records = append(records, rec)
		}
	}

	items := make([]domain.WorktreeItem, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(syncWorkers)

	for i, rec := range records {
		items[i].Record = rec

		if rec.Branch == "" {
			// Detached HEAD has no branch to compare
			items[i].Status = domain.NoUpstream()
			continue
		}

		g.Go(func() error {
			status, evalErr := s.gitRepo.EvaluateSync(gctx, s.repoRoot, rec.Branch)
			if evalErr != nil {
				logging.Logger.Warn("Sync evaluation failed, showing as no upstream",
					"branch", rec.Branch,
					"error", evalErr,
				)
				status = domain.NoUpstream()
			}
			items[i].Status = status
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}

// Delete removes a worktree, gated on confirmation when the branch has
// unpushed or unintegrated work. The target is re-read from git metadata
// first; a stale selection for an already-removed worktree surfaces as
// domain.ErrWorktreeNotFound.
func (s *WorktreeService) Delete(ctx context.Context, params DeleteParams) (*DeleteResult, error) {
	logging.Logger.Info("Deleting worktree",
		"worktree_path", params.WorktreePath,
		"confirmed", params.Confirmed,
		"delete_branch", params.DeleteBranch,
	)

	rec, err := s.findWorktree(params.WorktreePath)
	if err != nil {
		return nil, err
	}

	if rec.IsMain {
		return nil, fmt.Errorf("%w: refusing to remove the main working directory", domain.ErrWorktreeInUse)
	}
	if rec.Locked {
		return nil, fmt.Errorf("%w: worktree is locked", domain.ErrWorktreeInUse)
	}

	status := domain.NoUpstream()
	if rec.Branch != "" {
		status, err = s.gitRepo.EvaluateSync(ctx, s.repoRoot, rec.Branch)
		if errors.Is(err, domain.ErrRefResolution) {
			// An unresolvable upstream (pruned remote branch) cannot
			// warn about unpushed work, but it must not block removal
			// either. Treat it like a branch with no upstream.
			logging.Logger.Warn("Upstream unresolvable, deleting without sync warning",
				"branch", rec.Branch,
				"error", err,
			)
			status = domain.NoUpstream()
		} else if err != nil {
			return nil, err
		}
	}

	if status.RequiresConfirmation() && !params.Confirmed {
		logging.Logger.Info("Delete needs confirmation",
			"branch", rec.Branch,
			"status", status.String(),
		)
		return &DeleteResult{
			PendingConfirmation: true,
			Status:              status,
		}, nil
	}

	if err := s.gitRepo.RemoveWorktree(s.repoRoot, rec.Path); err != nil {
		s.journalAppend(ctx, domain.OpDelete, rec.Branch, rec.Path, domain.OutcomeFailed, err.Error())
		return nil, err
	}

	result := &DeleteResult{
		Removed: true,
		Status:  status,
	}

	if params.DeleteBranch && rec.Branch != "" {
		if err := s.gitRepo.DeleteBranch(s.repoRoot, rec.Branch); err != nil {
			// Worktree is already gone; report the partial outcome
			s.journalAppend(ctx, domain.OpDelete, rec.Branch, rec.Path, domain.OutcomeFailed,
				fmt.Sprintf("worktree removed but branch delete failed: %v", err))
			return result, err
		}
		result.BranchDeleted = true
	}

	s.journalAppend(ctx, domain.OpDelete, rec.Branch, rec.Path, domain.OutcomeSuccess, status.String())
	logging.Logger.Info("Worktree deleted",
		"worktree_path", rec.Path,
		"branch_deleted", result.BranchDeleted,
	)

	return result, nil
}

// History returns the most recent journal entries, newest first
func (s *WorktreeService) History(ctx context.Context, limit int) ([]domain.OperationRecord, error) {
	if s.journal == nil {
		return nil, nil
	}
	return s.journal.Recent(ctx, limit)
}

// findWorktree re-reads worktree metadata and locates path among the
// managed records. A worktree registered outside the managed directory
// is invisible here, same as one that never existed.
func (s *WorktreeService) findWorktree(path string) (domain.WorktreeRecord, error) {
	records, err := s.gitRepo.ListWorktrees(s.repoRoot)
	if err != nil {
		return domain.WorktreeRecord{}, err
	}

	cleaned := filepath.Clean(path)
	for _, rec := range records {
		if filepath.Clean(rec.Path) == cleaned && s.managed(rec) {
			return rec, nil
		}
	}

	return domain.WorktreeRecord{}, fmt.Errorf("%w: %s", domain.ErrWorktreeNotFound, path)
}

// journalAppend records an operation outcome, best effort
func (s *WorktreeService) journalAppend(ctx context.Context, kind domain.OperationKind, branch, worktreePath string, outcome domain.OperationOutcome, detail string) {
	if s.journal == nil {
		return
	}

	err := s.journal.Append(ctx, domain.OperationRecord{
		ID:           uuid.NewString(),
		Kind:         kind,
		Branch:       branch,
		WorktreePath: worktreePath,
		RepoRoot:     s.repoRoot,
		Outcome:      outcome,
		Detail:       detail,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Logger.Warn("Journal append failed", "error", err)
	}
}
