package domain

import "strings"

type DraftPhase string

const (
	DraftClosed  DraftPhase = "closed"
	DraftOpen    DraftPhase = "open"
	DraftSending DraftPhase = "sending"
)

// ReplyDraft is the in-progress reply to a single comment. The zero value is
// a closed draft. At most one draft is ever active (Open or Sending) in a
// session: opening a draft for another comment discards the current one,
// buffer included.
//
// Legal transitions:
//
//	Closed  --Open--> Open
//	Open    --Edit--> Open
//	Open    --Cancel--> Closed
//	Open    --BeginSend--> Sending (trimmed buffer must be non-empty)
//	Sending --SendSucceeded--> Closed
//	Sending --SendFailed--> Open (buffer preserved for retry)
type ReplyDraft struct {
	CommentID CommentID
	Text      string
	Phase     DraftPhase
}

func (d ReplyDraft) phase() DraftPhase {
	if d.Phase == "" {
		return DraftClosed
	}
	return d.Phase
}

// Active reports whether the draft holds state worth preserving.
func (d ReplyDraft) Active() bool {
	p := d.phase()
	return p == DraftOpen || p == DraftSending
}

// Open starts a fresh, empty draft for the given comment. Any previous
// draft's buffer is discarded, regardless of its phase.
func (d ReplyDraft) Open(id CommentID) ReplyDraft {
	return ReplyDraft{CommentID: id, Phase: DraftOpen}
}

// Edit replaces the buffered text of an open draft.
func (d ReplyDraft) Edit(text string) (ReplyDraft, error) {
	if d.phase() != DraftOpen {
		return d, ErrDraftNotOpen
	}
	d.Text = text
	return d, nil
}

// Cancel closes the draft and discards the buffer.
func (d ReplyDraft) Cancel() ReplyDraft {
	return ReplyDraft{}
}

// CanSend reports whether BeginSend would move the draft to Sending.
func (d ReplyDraft) CanSend() bool {
	return d.phase() == DraftOpen && strings.TrimSpace(d.Text) != ""
}

// BeginSend moves an open draft to Sending. A whitespace-only buffer returns
// ErrEmptyReply and leaves the draft untouched; callers treat that as a
// silent no-op, not a failure to report.
func (d ReplyDraft) BeginSend() (ReplyDraft, error) {
	if d.phase() != DraftOpen {
		return d, ErrDraftNotOpen
	}
	if strings.TrimSpace(d.Text) == "" {
		return d, ErrEmptyReply
	}
	d.Phase = DraftSending
	return d, nil
}

// SendSucceeded closes the draft after a delivered reply.
func (d ReplyDraft) SendSucceeded() (ReplyDraft, error) {
	if d.phase() != DraftSending {
		return d, ErrDraftNotSending
	}
	return ReplyDraft{}, nil
}

// SendFailed returns the draft to Open with the buffer intact so the
// operator can edit or retry.
func (d ReplyDraft) SendFailed() (ReplyDraft, error) {
	if d.phase() != DraftSending {
		return d, ErrDraftNotSending
	}
	d.Phase = DraftOpen
	return d, nil
}
