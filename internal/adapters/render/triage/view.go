package triage

import (
	"fmt"
	"strings"

	"github.com/aadarshkt/comment-copilot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.viewTabs(),
		m.viewStatusLine(),
	}

	if body := m.viewBody(); body != "" {
		sections = append(sections, body)
	}

	sections = append(sections, m.viewHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(m.vocab.Categories()))
	for _, category := range m.vocab.Categories() {
		label := string(category)
		if category == m.category {
			tabs = append(tabs, m.styles.tabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.tabInactive.Render(label))
		}
	}
	return strings.Join(tabs, m.styles.tabInactive.Render(" | "))
}

func (m Model) viewStatusLine() string {
	parts := []string{}

	if m.syncer.Pending() {
		parts = append(parts, m.spinner.View()+m.styles.header.Render("Syncing..."))
	}

	if n := m.notifier.Current(); n != nil {
		style := m.styles.notifSuccess
		if n.Kind == domain.NotificationError {
			style = m.styles.notifError
		}
		parts = append(parts, style.Render(n.Message))
	}

	if len(parts) == 0 {
		return m.styles.header.Render(fmt.Sprintf("category: %s", m.category))
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewBody() string {
	snap := m.snapshot

	sections := []string{}

	if snap.Err != nil {
		sections = append(sections, m.styles.errorPanel.Render("Failed to load comments: "+snap.Err.Error()))
	}

	switch {
	case snap.Loading && !snap.HasData():
		sections = append(sections, m.spinner.View()+m.styles.empty.Render("Loading comments..."))
	case !snap.HasData():
		// Error panel above already explains why there is nothing to show.
	case len(snap.Comments) == 0:
		sections = append(sections, m.styles.empty.Render("No comments in this category."))
	default:
		if snap.Stale && snap.Loading {
			sections = append(sections, m.styles.staleNote.Render("refreshing..."))
		}
		sections = append(sections, m.viewComments())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewComments() string {
	draft := m.replies.Draft()

	rows := make([]string, 0, len(m.snapshot.Comments))
	for i, comment := range m.snapshot.Comments {
		rows = append(rows, m.viewComment(comment, i == m.cursor, draft))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewComment(comment domain.Comment, selected bool, draft domain.ReplyDraft) string {
	marker := "  "
	if selected {
		marker = m.styles.cursor.Render("> ")
	}

	header := marker +
		m.styles.author.Render(comment.AuthorName) +
		m.styles.date.Render("  "+comment.PublishedAt.Local().Format("2006-01-02")) +
		"  " + m.styles.badge.Render("["+string(comment.Category)+"]")

	lines := []string{header, "  " + m.styles.text.Render(comment.TextOriginal)}

	if draft.Active() && draft.CommentID == comment.ID {
		lines = append(lines, m.viewDraft(draft))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewDraft(draft domain.ReplyDraft) string {
	if draft.Phase == domain.DraftSending {
		return m.styles.sending.Render(m.spinner.View() + "Sending reply...")
	}
	return m.styles.draftFrame.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			m.textarea.View(),
			m.styles.help.Render("ctrl+s send · esc cancel"),
		),
	)
}

func (m Model) viewHelp() string {
	return m.styles.help.Render("←/→ category · ↑/↓ select · r reply · s sync · R refresh · q quit")
}
