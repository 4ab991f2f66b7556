package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"ramal/internal/domain"
	"ramal/internal/theme"
)

// WorktreeListItem implements list.Item for a worktree entry
type WorktreeListItem struct {
	Item domain.WorktreeItem
}

// FilterValue implements list.Item; filtering matches branch names
func (i WorktreeListItem) FilterValue() string {
	return i.Item.Record.Branch
}

// worktreeDelegate renders one worktree as two lines: branch with sync
// badge, then the worktree path.
type worktreeDelegate struct{}

// Height implements list.ItemDelegate
func (d worktreeDelegate) Height() int { return 2 }

// Spacing implements list.ItemDelegate
func (d worktreeDelegate) Spacing() int { return 1 }

// Update implements list.ItemDelegate
func (d worktreeDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate
func (d worktreeDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(WorktreeListItem)
	if !ok {
		return
	}

	cursor := " "
	if index == m.Index() {
		cursor = ">"
	}

	branch := item.Item.Record.Branch
	if branch == "" {
		branch = "(detached)"
	}

	line1 := theme.NormalStyle.Render(fmt.Sprintf("%s %02d. %s", cursor, index+1, branch))
	if item.Item.Record.IsMain {
		line1 += theme.BranchStyle.Render(" [main]")
	}
	if item.Item.Record.Locked {
		line1 += theme.BranchStyle.Render(" [locked]")
	}
	line1 += " " + renderSyncBadge(item.Item.Status)

	indent := "      "
	line2 := theme.PathStyle.Render(indent + collapseHome(item.Item.Record.Path))

	fmt.Fprint(w, line1+"\n"+line2)
}

// renderSyncBadge renders the colored sync status marker for a list row
func renderSyncBadge(status domain.SyncStatus) string {
	text := "[" + status.String() + "]"
	switch status.Kind {
	case domain.SyncAhead:
		return theme.AheadBadgeStyle.Render(text)
	case domain.SyncBehind:
		return theme.BehindBadgeStyle.Render(text)
	case domain.SyncDiverged:
		return theme.DivergedBadgeStyle.Render(text)
	case domain.SyncNoUpstream:
		return theme.NoUpstreamBadgeStyle.Render(text)
	default:
		return theme.InSyncBadgeStyle.Render(text)
	}
}

// collapseHome shortens a path under $HOME to ~/ for display
func collapseHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || home == "/" {
		return path
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.Join("~", rel)
}

// WorktreeList is the Bubble Tea component for the main listing
type WorktreeList struct {
	err     error
	keys    KeyMap
	list    list.Model
	loading bool

	// Window dimensions
	height     int
	listHeight int
	width      int
}

// NewWorktreeList creates the list component. It starts empty and
// loading; the Model triggers the first load in Init.
func NewWorktreeList(keys KeyMap) *WorktreeList {
	l := list.New(nil, worktreeDelegate{}, 80, 28)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return &WorktreeList{
		keys:    keys,
		list:    l,
		loading: true,
	}
}

// SetItems replaces the listing with a fresh one
func (wl *WorktreeList) SetItems(items []domain.WorktreeItem) {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = WorktreeListItem{Item: item}
	}
	wl.list.SetItems(listItems)
	wl.loading = false
	wl.err = nil
}

// SetError shows an error on the status line
func (wl *WorktreeList) SetError(err error) {
	wl.err = err
	wl.loading = false
}

// Selected returns the currently highlighted worktree, if any
func (wl *WorktreeList) Selected() (domain.WorktreeItem, bool) {
	item, ok := wl.list.SelectedItem().(WorktreeListItem)
	if !ok {
		return domain.WorktreeItem{}, false
	}
	return item.Item, true
}

// SetSize updates the component dimensions
func (wl *WorktreeList) SetSize(width, height int) {
	wl.width = width
	wl.height = height
	// Header, error line and help bar take the rest
	wl.listHeight = height - 8
	if wl.listHeight < 4 {
		wl.listHeight = 4
	}
	wl.list.SetSize(width, wl.listHeight)
}

// Init implements tea.Model
func (wl *WorktreeList) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Key presses outside filtering turn into
// action messages the Model handles.
func (wl *WorktreeList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		wl.SetSize(msg.Width, msg.Height)
		return wl, nil

	case tea.KeyMsg:
		if wl.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, wl.keys.Quit), key.Matches(msg, wl.keys.ForceQuit):
			return wl, func() tea.Msg { return QuitMsg{} }
		case key.Matches(msg, wl.keys.Help):
			return wl, func() tea.Msg { return ShowHelpMsg{} }
		case key.Matches(msg, wl.keys.New):
			return wl, func() tea.Msg { return NewWorktreeMsg{} }
		case key.Matches(msg, wl.keys.Refresh):
			return wl, func() tea.Msg { return RefreshMsg{} }
		case key.Matches(msg, wl.keys.Delete):
			if item, ok := wl.Selected(); ok {
				return wl, func() tea.Msg { return DeleteWorktreeMsg{Item: item} }
			}
			return wl, nil
		}
	}

	var cmd tea.Cmd
	wl.list, cmd = wl.list.Update(msg)
	return wl, cmd
}

// View implements tea.Model
func (wl *WorktreeList) View() string {
	view := renderHeader("")
	view += theme.TitleStyle.Render("Worktrees")
	view += "\n"

	switch {
	case wl.loading:
		view += theme.BranchStyle.Render("Loading worktrees...")
	case len(wl.list.Items()) == 0:
		view += theme.BranchStyle.Render("No worktrees yet. Press 'n' to create one.")
	default:
		view += wl.list.View()
	}

	if wl.err != nil {
		view += "\n" + theme.ErrorStyle.Render(formatErrorForDisplay(wl.err, wl.width))
	}

	view += "\n" + wl.renderHelpBar()
	return view
}

// renderHelpBar renders the short help line under the list
func (wl *WorktreeList) renderHelpBar() string {
	var help string
	for i, binding := range wl.keys.ShortHelp() {
		if i > 0 {
			help += theme.HelpDescStyle.Render(" • ")
		}
		help += theme.HelpKeyStyle.UnsetWidth().Render(binding.Help().Key)
		help += theme.HelpDescStyle.Render(" " + binding.Help().Desc)
	}
	return help
}
