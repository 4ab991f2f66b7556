package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"ramal/internal/adapters/git"
	"ramal/internal/adapters/storage"
	"ramal/internal/config"
	"ramal/internal/logging"
	"ramal/internal/ports"
	"ramal/internal/services"
	"ramal/internal/ui"
)

// sessionModel wraps ui.Model to close the per-session journal when the
// remote user quits.
type sessionModel struct {
	*ui.Model
	journal   ports.OperationJournal
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)

		if s.journal != nil {
			if err := s.journal.Close(); err != nil {
				logging.Logger.Error("Failed to close journal for SSH session",
					"error", err,
					"session_id", s.sessionID)
			}
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", duration.String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates a Bubble Tea model for each SSH session. Every
// session gets its own journal handle; the git adapter is stateless and
// shared implicitly through the repository on disk.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	gitRepo := git.NewCLIRepository()

	repoRoot, err := gitRepo.Discover(s.repoRoot)
	if err != nil {
		logging.Logger.Error("Served path is not a repository",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	journal, err := storage.NewSQLiteJournal(config.JournalDBPath())
	if err != nil {
		// The journal is advisory; serve without it
		logging.Logger.Warn("Failed to open journal for SSH session",
			"error", err,
			"session_id", sessionID)
		journal = nil
	}

	var journalPort ports.OperationJournal
	if journal != nil {
		journalPort = journal
	}

	var worktreeDir string
	cfg, err := config.Load(repoRoot)
	if err != nil {
		logging.Logger.Error("Failed to load repository config",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}
	if cfg != nil {
		worktreeDir = cfg.ResolveWorktreeDir(repoRoot)
	}

	service := services.NewWorktreeService(gitRepo, journalPort, repoRoot, worktreeDir)
	model := ui.NewModel(service, worktreeDir)

	wrappedModel := &sessionModel{
		Model:     model,
		journal:   journalPort,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel displays an error and exits
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
