package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"ramal/internal/logging"
	"ramal/internal/services"
	"ramal/internal/theme"
)

// CreateFormResult contains the result of the create form
type CreateFormResult struct {
	BranchName   string
	Cancelled    bool
	Error        error
	WorktreePath string
}

// CreateForm is a Bubble Tea component for creating a worktree
type CreateForm struct {
	Completed bool // Exported so Model can check completion

	creating    bool // True while the git commands run
	form        *huh.Form
	result      CreateFormResult
	service     *services.WorktreeService
	spinner     spinner.Model
	worktreeDir string
}

// NewCreateForm creates a new worktree creation form
func NewCreateForm(service *services.WorktreeService, worktreeDir string) *CreateForm {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	cf := &CreateForm{
		service:     service,
		spinner:     s,
		worktreeDir: worktreeDir,
	}

	branchField := huh.NewInput().
		Title("Branch name").
		DescriptionFunc(func() string {
			if cf.result.BranchName == "" {
				return fmt.Sprintf("Worktree will be created under %s", collapseHome(worktreeDir))
			}
			if err := cf.service.ValidateBranchName(cf.result.BranchName); err != nil {
				if sanitized, sErr := cf.service.SanitizeBranchName(cf.result.BranchName); sErr == nil {
					return fmt.Sprintf("Suggested branch name: %s", sanitized)
				}
			}
			return ""
		}, &cf.result.BranchName).
		Value(&cf.result.BranchName).
		Validate(func(s string) error {
			if s == "" {
				return fmt.Errorf("branch name required")
			}
			return cf.service.ValidateBranchName(s)
		})

	cf.form = huh.NewForm(huh.NewGroup(branchField))
	return cf
}

func (cf *CreateForm) Init() tea.Cmd {
	return cf.form.Init()
}

func (cf *CreateForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(worktreeCreatedMsg); ok {
		cf.creating = false
		cf.Completed = true
		if msg.err != nil {
			logging.Logger.Error("Failed to create worktree", "error", msg.err)
			cf.result.Error = msg.err
		} else {
			cf.result.WorktreePath = msg.worktreePath
		}
		return cf, nil
	}

	if cf.creating {
		var cmd tea.Cmd
		cf.spinner, cmd = cf.spinner.Update(msg)
		return cf, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			cf.Completed = true
			cf.result.Cancelled = true
			return cf, nil
		}
	}

	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}

	if cf.form.State == huh.StateCompleted && !cf.creating {
		cf.creating = true
		return cf, tea.Batch(cf.createWorktreeCmd(), cf.spinner.Tick)
	}

	return cf, cmd
}

func (cf *CreateForm) View() string {
	if cf.creating {
		return fmt.Sprintf("\n%s Creating worktree...\n", cf.spinner.View())
	}
	return cf.form.View()
}

// Result returns the form result
func (cf *CreateForm) Result() CreateFormResult {
	return cf.result
}

// createWorktreeCmd runs the create operation asynchronously
func (cf *CreateForm) createWorktreeCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := cf.service.Create(context.Background(), services.CreateParams{
			BranchName:  cf.result.BranchName,
			WorktreeDir: cf.worktreeDir,
		})
		if err != nil {
			return worktreeCreatedMsg{branch: cf.result.BranchName, err: err}
		}
		return worktreeCreatedMsg{branch: result.Branch, worktreePath: result.WorktreePath}
	}
}
