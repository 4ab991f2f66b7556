package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"ramal/internal/domain"
	"ramal/internal/logging"
	"ramal/internal/services"
	"ramal/internal/theme"
)

// ConfirmDeleteResult contains the result of the delete dialog
type ConfirmDeleteResult struct {
	BranchDeleted bool
	Cancelled     bool
	Error         error
	Removed       bool
}

// ConfirmDelete is the dialog for removing a worktree. It shows a
// warning when the branch has unpushed or unintegrated work; proceeding
// through the form is the confirmation the lifecycle service requires.
type ConfirmDelete struct {
	Completed bool // Exported so Model can check completion

	confirmed    bool
	deleteBranch bool
	deleting     bool
	form         *huh.Form
	item         domain.WorktreeItem
	result       ConfirmDeleteResult
	service      *services.WorktreeService
	spinner      spinner.Model
}

// NewConfirmDelete creates the delete dialog for one worktree
func NewConfirmDelete(service *services.WorktreeService, item domain.WorktreeItem) *ConfirmDelete {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	cd := &ConfirmDelete{
		item:    item,
		service: service,
		spinner: s,
	}

	confirmTitle := fmt.Sprintf("Remove worktree for %q?", item.Record.Branch)
	confirmField := huh.NewConfirm().
		Title(confirmTitle).
		Description(deleteDescription(item)).
		Value(&cd.confirmed).
		Affirmative("Remove").
		Negative("Keep")

	branchField := huh.NewConfirm().
		Title("Also delete the branch?").
		Description("The worktree directory goes away either way.").
		Value(&cd.deleteBranch).
		Affirmative("Yes").
		Negative("No")

	cd.form = huh.NewForm(huh.NewGroup(confirmField, branchField))
	return cd
}

// deleteDescription summarizes what the user is about to lose
func deleteDescription(item domain.WorktreeItem) string {
	desc := collapseHome(item.Record.Path)
	if item.Status.RequiresConfirmation() {
		desc += "\n" + theme.WarningStyle.Render(
			fmt.Sprintf("Branch is %s its upstream. Unintegrated work will be lost.", item.Status.String()))
	}
	return desc
}

func (cd *ConfirmDelete) Init() tea.Cmd {
	return cd.form.Init()
}

func (cd *ConfirmDelete) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(worktreeDeletedMsg); ok {
		cd.deleting = false
		cd.Completed = true
		if msg.err != nil {
			logging.Logger.Error("Failed to delete worktree", "error", msg.err)
			cd.result.Error = msg.err
		} else {
			cd.result.Removed = true
			cd.result.BranchDeleted = msg.branchDeleted
		}
		return cd, nil
	}

	if cd.deleting {
		var cmd tea.Cmd
		cd.spinner, cmd = cd.spinner.Update(msg)
		return cd, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			cd.Completed = true
			cd.result.Cancelled = true
			return cd, nil
		}
	}

	form, cmd := cd.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cd.form = f
	}

	if cd.form.State == huh.StateCompleted && !cd.deleting {
		if !cd.confirmed {
			cd.Completed = true
			cd.result.Cancelled = true
			return cd, nil
		}
		cd.deleting = true
		return cd, tea.Batch(cd.deleteWorktreeCmd(), cd.spinner.Tick)
	}

	return cd, cmd
}

func (cd *ConfirmDelete) View() string {
	if cd.deleting {
		return fmt.Sprintf("\n%s Removing worktree...\n", cd.spinner.View())
	}
	return cd.form.View()
}

// Result returns the dialog result
func (cd *ConfirmDelete) Result() ConfirmDeleteResult {
	return cd.result
}

// deleteWorktreeCmd runs the delete operation asynchronously. The form
// confirmation covers the unpushed-work gate, so Confirmed is passed
// through as true.
func (cd *ConfirmDelete) deleteWorktreeCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := cd.service.Delete(context.Background(), services.DeleteParams{
			WorktreePath: cd.item.Record.Path,
			Confirmed:    true,
			DeleteBranch: cd.deleteBranch,
		})
		if err != nil {
			return worktreeDeletedMsg{err: err}
		}
		return worktreeDeletedMsg{branchDeleted: result.BranchDeleted}
	}
}
