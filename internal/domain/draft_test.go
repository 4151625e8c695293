package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftZeroValueIsClosed(t *testing.T) {
	t.Parallel()

	var draft ReplyDraft
	assert.False(t, draft.Active())
	assert.False(t, draft.CanSend())
}

func TestDraftOpenEditSendLifecycle(t *testing.T) {
	t.Parallel()

	var draft ReplyDraft

	draft = draft.Open(7)
	assert.Equal(t, CommentID(7), draft.CommentID)
	assert.Equal(t, DraftOpen, draft.Phase)
	assert.Empty(t, draft.Text)

	draft, err := draft.Edit("Thanks!")
	require.NoError(t, err)
	assert.Equal(t, "Thanks!", draft.Text)

	draft, err = draft.BeginSend()
	require.NoError(t, err)
	assert.Equal(t, DraftSending, draft.Phase)

	draft, err = draft.SendSucceeded()
	require.NoError(t, err)
	assert.False(t, draft.Active())
	assert.Empty(t, draft.Text)
}

func TestDraftOpenForAnotherCommentDiscardsBuffer(t *testing.T) {
	t.Parallel()

	draft := ReplyDraft{}.Open(7)
	draft, err := draft.Edit("for seven")
	require.NoError(t, err)

	draft = draft.Open(9)
	assert.Equal(t, CommentID(9), draft.CommentID)
	assert.Empty(t, draft.Text)
	assert.Equal(t, DraftOpen, draft.Phase)
}

func TestDraftBeginSendRejectsWhitespaceBuffer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "spaces", text: "   "},
		{name: "tabs and newlines", text: "\t\n "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			draft := ReplyDraft{}.Open(7)
			draft, err := draft.Edit(tt.text)
			require.NoError(t, err)

			unchanged, err := draft.BeginSend()
			require.ErrorIs(t, err, ErrEmptyReply)
			assert.Equal(t, draft, unchanged, "no phase change on empty send")
		})
	}
}

func TestDraftSendFailedPreservesBuffer(t *testing.T) {
	t.Parallel()

	draft := ReplyDraft{}.Open(7)
	draft, err := draft.Edit("Thanks!")
	require.NoError(t, err)
	draft, err = draft.BeginSend()
	require.NoError(t, err)

	draft, err = draft.SendFailed()
	require.NoError(t, err)
	assert.Equal(t, DraftOpen, draft.Phase)
	assert.Equal(t, "Thanks!", draft.Text)
}

func TestDraftIllegalTransitions(t *testing.T) {
	t.Parallel()

	var closed ReplyDraft
	_, err := closed.Edit("text")
	assert.ErrorIs(t, err, ErrDraftNotOpen)
	_, err = closed.BeginSend()
	assert.ErrorIs(t, err, ErrDraftNotOpen)
	_, err = closed.SendSucceeded()
	assert.ErrorIs(t, err, ErrDraftNotSending)
	_, err = closed.SendFailed()
	assert.ErrorIs(t, err, ErrDraftNotSending)

	sending, err := ReplyDraft{CommentID: 7, Text: "x", Phase: DraftOpen}.BeginSend()
	require.NoError(t, err)
	_, err = sending.Edit("y")
	assert.ErrorIs(t, err, ErrDraftNotOpen)
	_, err = sending.BeginSend()
	assert.ErrorIs(t, err, ErrDraftNotOpen)
}

func TestDraftCancelFromOpen(t *testing.T) {
	t.Parallel()

	draft := ReplyDraft{}.Open(7)
	draft, err := draft.Edit("half-written")
	require.NoError(t, err)

	draft = draft.Cancel()
	assert.False(t, draft.Active())
	assert.Empty(t, draft.Text)
}
