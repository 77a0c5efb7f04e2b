package chordbook

import "errors"

var (
	ErrNotFound      = errors.New("custom chord not found")
	ErrDuplicateID   = errors.New("custom chord id already exists")
	ErrDuplicateName = errors.New("a custom chord with this name already exists")
	ErrInvalidChord  = errors.New("invalid custom chord")
)
