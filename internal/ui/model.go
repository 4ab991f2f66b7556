package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"ramal/internal/logging"
	"ramal/internal/services"
)

type uiState int

const (
	stateList uiState = iota
	stateConfirmingDelete
	stateCreating
	stateHelp
	stateSetup
)

// Model is the top-level Bubble Tea model. It owns the state machine
// between the worktree list and its dialogs; the components own their
// rendering and forms.
type Model struct {
	confirmDelete *Dialog
	createForm    *Dialog
	helpScreen    *Dialog
	height        int
	keys          KeyMap
	list          *WorktreeList
	service       *services.WorktreeService
	setupForm     *Dialog
	state         uiState
	width         int
	worktreeDir   string
}

// NewModel creates the top-level model. An empty worktreeDir means the
// repository has no config yet and the first-run setup is shown before
// anything else.
func NewModel(service *services.WorktreeService, worktreeDir string) *Model {
	keys := NewKeyMap()

	m := &Model{
		keys:        keys,
		list:        NewWorktreeList(keys),
		service:     service,
		state:       stateList,
		worktreeDir: worktreeDir,
	}

	if worktreeDir == "" {
		m.setupForm = NewDialog("First-run setup", NewSetupForm(service.RepoRoot()))
		m.state = stateSetup
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	if m.state == stateSetup {
		return m.setupForm.Init()
	}
	return m.loadWorktreesCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Window size reaches every component regardless of state
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
	}

	switch m.state {
	case stateList:
		return m.updateList(msg)
	case stateConfirmingDelete:
		return m.updateConfirmingDelete(msg)
	case stateCreating:
		return m.updateCreating(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateSetup:
		return m.updateSetup(msg)
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		return m, tea.Quit

	case ShowHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys))
		m.state = stateHelp
		return m, m.helpScreen.Init()

	case NewWorktreeMsg:
		m.createForm = NewDialog("Create Worktree", NewCreateForm(m.service, m.worktreeDir))
		m.state = stateCreating
		return m, m.createForm.Init()

	case DeleteWorktreeMsg:
		if msg.Item.Record.IsMain {
			m.list.SetError(errMainWorktree)
			return m, nil
		}
		m.confirmDelete = NewDialog("Delete Worktree", NewConfirmDelete(m.service, msg.Item))
		m.state = stateConfirmingDelete
		return m, m.confirmDelete.Init()

	case RefreshMsg:
		return m, m.loadWorktreesCmd()

	case worktreesLoadedMsg:
		if msg.err != nil {
			m.list.SetError(msg.err)
		} else {
			m.list.SetItems(msg.items)
		}
		return m, nil
	}

	updated, cmd := m.list.Update(msg)
	m.list = updated.(*WorktreeList)
	return m, cmd
}

func (m *Model) updateCreating(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.createForm.Update(msg)
	m.createForm = updated.(*Dialog)

	if form, ok := m.createForm.Content().(*CreateForm); ok && form.Completed {
		result := form.Result()
		m.state = stateList
		m.createForm = nil

		if result.Cancelled {
			return m, nil
		}
		if result.Error != nil {
			m.list.SetError(result.Error)
			return m, m.loadWorktreesCmd()
		}

		logging.Logger.Info("Worktree created from TUI",
			"branch", result.BranchName,
			"worktree_path", result.WorktreePath,
		)
		return m, m.loadWorktreesCmd()
	}

	return m, cmd
}

func (m *Model) updateConfirmingDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.confirmDelete.Update(msg)
	m.confirmDelete = updated.(*Dialog)

	if dialog, ok := m.confirmDelete.Content().(*ConfirmDelete); ok && dialog.Completed {
		result := dialog.Result()
		m.state = stateList
		m.confirmDelete = nil

		if result.Cancelled {
			return m, nil
		}
		if result.Error != nil {
			m.list.SetError(result.Error)
		}
		// Removal may have partially succeeded; re-read either way
		return m, m.loadWorktreesCmd()
	}

	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "ctrl+c":
			m.state = stateList
			m.helpScreen = nil
			return m, nil
		}
	}

	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)
	return m, cmd
}

func (m *Model) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.setupForm.Update(msg)
	m.setupForm = updated.(*Dialog)

	if form, ok := m.setupForm.Content().(*SetupForm); ok && form.Completed {
		result := form.Result()

		if result.Cancelled {
			// Nothing to manage without a worktree directory
			return m, tea.Quit
		}
		if result.Error != nil {
			m.setupForm = NewDialog("First-run setup", NewSetupForm(m.service.RepoRoot()))
			m.list.SetError(result.Error)
			return m, m.setupForm.Init()
		}

		m.worktreeDir = result.WorktreeDir
		m.service.SetWorktreeDir(result.WorktreeDir)
		m.setupForm = nil
		m.state = stateList
		return m, m.loadWorktreesCmd()
	}

	return m, cmd
}

func (m *Model) View() string {
	switch m.state {
	case stateConfirmingDelete:
		return m.confirmDelete.View()
	case stateCreating:
		return m.createForm.View()
	case stateHelp:
		return m.helpScreen.View()
	case stateSetup:
		return m.setupForm.View()
	default:
		return m.list.View()
	}
}

// loadWorktreesCmd re-reads the listing with sync statuses
func (m *Model) loadWorktreesCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := m.service.List(context.Background())
		return worktreesLoadedMsg{items: items, err: err}
	}
}
