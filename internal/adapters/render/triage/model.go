// Package triage is the interactive triage view. All state transitions run
// on the bubbletea update loop; network calls run as commands and re-enter
// the loop as messages, so the cache, draft, and notification state are only
// ever touched from one logical thread.
package triage

import (
	"context"
	"time"

	"github.com/aadarshkt/comment-copilot/internal/application"
	"github.com/aadarshkt/comment-copilot/internal/domain"
	"github.com/aadarshkt/comment-copilot/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type commentsLoadedMsg struct {
	category domain.Category
	err      error
}

type syncDoneMsg struct{ err error }

type replyDoneMsg struct{ err error }

type notificationExpiredMsg struct{}

// Deps are the owned state objects the view coordinates. The model holds no
// mutable state of theirs; it reads snapshots and issues explicit calls.
type Deps struct {
	Cache      *application.CommentCache
	Syncer     *application.SyncCoordinator
	Replies    *application.ReplyService
	Notifier   *application.Notifier
	Vocabulary domain.Vocabulary
	Clock      ports.Clock
	Category   domain.Category
}

type Model struct {
	ctx      context.Context
	cache    *application.CommentCache
	syncer   *application.SyncCoordinator
	replies  *application.ReplyService
	notifier *application.Notifier
	vocab    domain.Vocabulary
	clock    ports.Clock
	styles   styles

	category domain.Category
	snapshot application.Snapshot
	cursor   int

	textarea textarea.Model
	spinner  spinner.Model

	width    int
	quitting bool
}

func New(ctx context.Context, deps Deps) Model {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	category := deps.Category
	if category == "" {
		category = deps.Vocabulary.Default()
	}

	ta := textarea.New()
	ta.Placeholder = "Write a reply..."
	ta.SetHeight(3)
	ta.CharLimit = 0

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		ctx:      ctx,
		cache:    deps.Cache,
		syncer:   deps.Syncer,
		replies:  deps.Replies,
		notifier: deps.Notifier,
		vocab:    deps.Vocabulary,
		clock:    deps.Clock,
		styles:   newStyles(),
		category: category,
		snapshot: deps.Cache.Read(category),
		textarea: ta,
		spinner:  sp,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd(m.category))
}

// loadCmd fetches a category through the cache. The message carries only the
// category and the error: the cache entry is the single source of truth, and
// a late arrival for a category no longer displayed still updated its entry
// without touching the one on screen.
func (m Model) loadCmd(category domain.Category) tea.Cmd {
	ctx := m.ctx
	cache := m.cache
	return func() tea.Msg {
		_, err := cache.Fetch(ctx, category)
		return commentsLoadedMsg{category: category, err: err}
	}
}

func (m Model) syncCmd() tea.Cmd {
	ctx := m.ctx
	syncer := m.syncer
	return func() tea.Msg {
		return syncDoneMsg{err: syncer.Sync(ctx)}
	}
}

func (m Model) sendCmd() tea.Cmd {
	ctx := m.ctx
	replies := m.replies
	category := m.category
	return func() tea.Msg {
		return replyDoneMsg{err: replies.Send(ctx, category)}
	}
}

// expireCmd wakes the loop shortly after the current notification's expiry
// so it disappears without user input.
func (m Model) expireCmd() tea.Cmd {
	return tea.Tick(m.notifier.TTL()+100*time.Millisecond, func(time.Time) tea.Msg {
		return notificationExpiredMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.textarea.SetWidth(min(msg.Width-4, 76))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commentsLoadedMsg:
		if msg.category == m.category {
			m.snapshot = m.cache.Read(m.category)
			m.clampCursor()
		}
		return m, nil

	case syncDoneMsg:
		m.snapshot = m.cache.Read(m.category)
		cmds := []tea.Cmd{m.expireCmd()}
		if m.cache.NeedsFetch(m.category) {
			cmds = append(cmds, m.loadCmd(m.category))
		}
		return m, tea.Batch(cmds...)

	case replyDoneMsg:
		cmds := []tea.Cmd{m.expireCmd()}
		draft := m.replies.Draft()
		if draft.Active() {
			// Failed (or no-op) send: keep the buffer editable.
			cmds = append(cmds, m.textarea.Focus())
		} else {
			m.textarea.Reset()
			m.textarea.Blur()
		}
		m.snapshot = m.cache.Read(m.category)
		if m.cache.NeedsFetch(m.category) {
			cmds = append(cmds, m.loadCmd(m.category))
		}
		return m, tea.Batch(cmds...)

	case notificationExpiredMsg:
		// Re-render only; Current() now reports nil once expired.
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.textarea.Focused() {
		return m.handleDraftKey(msg)
	}

	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "left", "h", "shift+tab":
		return m.switchCategory(m.vocab.Prev(m.category))
	case "right", "l", "tab":
		return m.switchCategory(m.vocab.Next(m.category))
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.snapshot.Comments)-1 {
			m.cursor++
		}
		return m, nil
	case "r", "enter":
		return m.openDraft()
	case "s":
		if m.syncer.Pending() {
			return m, nil
		}
		return m, m.syncCmd()
	case "R":
		m.cache.Invalidate(m.category)
		return m, m.loadCmd(m.category)
	}

	return m, nil
}

func (m Model) handleDraftKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.replies.Cancel()
		m.textarea.Reset()
		m.textarea.Blur()
		return m, nil
	case "ctrl+s":
		if !m.replies.Draft().CanSend() {
			// Empty buffer: no network call, no phase change.
			return m, nil
		}
		m.textarea.Blur()
		return m, m.sendCmd()
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if _, err := m.replies.Edit(m.textarea.Value()); err != nil {
		// Draft closed out from under the textarea; drop the keystrokes.
		m.textarea.Reset()
		m.textarea.Blur()
	}
	return m, cmd
}

func (m Model) openDraft() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.snapshot.Comments) {
		return m, nil
	}
	comment := m.snapshot.Comments[m.cursor]
	m.replies.Open(comment.ID)
	m.textarea.Reset()
	return m, m.textarea.Focus()
}

func (m Model) switchCategory(next domain.Category) (tea.Model, tea.Cmd) {
	if next == m.category {
		return m, nil
	}
	m.category = next
	m.cursor = 0
	m.snapshot = m.cache.Read(next)
	if m.cache.NeedsFetch(next) {
		// In-flight reads for the previous category are not cancelled; their
		// results land in the cache for when the operator returns.
		return m, m.loadCmd(next)
	}
	return m, nil
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.snapshot.Comments) {
		m.cursor = len(m.snapshot.Comments) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Category is the currently displayed category.
func (m Model) Category() domain.Category {
	return m.category
}
