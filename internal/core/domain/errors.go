package domain

import "errors"

var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrEmptyQuestionText = errors.New("question text is required")
)
