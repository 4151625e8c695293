package comments

import (
	"fmt"

	"github.com/aadarshkt/comment-copilot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Category   domain.Category
	Vocabulary domain.Vocabulary
}

func renderView(comments []domain.Comment, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Comments — %s", opts.Category)),
		s.header.Render(fmt.Sprintf("comments: %d", len(comments))),
	}

	if len(comments) == 0 {
		lines = append(lines, s.empty.Render("No comments in this category."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, comment := range comments {
		lines = append(lines, s.section.Render(renderComment(comment, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderComment(comment domain.Comment, opts RenderOptions, s styles) string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.author.Render(comment.AuthorName),
		s.date.Render("  "+comment.PublishedAt.Local().Format("2006-01-02")),
		"  ",
		badge(comment.Category, opts.Vocabulary, s),
	)

	parts := []string{
		header,
		s.text.Render(comment.TextOriginal),
		s.permalink.Render(comment.Permalink()),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func badge(category domain.Category, vocab domain.Vocabulary, s styles) string {
	position := -1
	for i, member := range vocab.Categories() {
		if member == category {
			position = i
			break
		}
	}
	return s.badgeFor(position).Render("[" + string(category) + "]")
}
