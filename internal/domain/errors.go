package domain

import "errors"

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrNoChannel       = errors.New("no channel linked to this account")
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyReply      = errors.New("reply text is empty")
	ErrDraftNotOpen    = errors.New("reply draft is not open")
	ErrDraftNotSending = errors.New("reply draft is not sending")
	ErrUnknownCategory = errors.New("unknown category")
	ErrEmptyVocabulary = errors.New("no categories configured")
	ErrSecretNotFound  = errors.New("secret not found")
)
