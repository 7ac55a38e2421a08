package session

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("session not found")

	// ErrPrecondition is the class of errors returned when the session exists
	// but is not in a state that allows the operation.
	ErrPrecondition = errors.New("precondition not met")

	ErrInvalidQuestionCount = fmt.Errorf("question count must be at least 1: %w", ErrPrecondition)
	ErrNoMoreQuestions      = fmt.Errorf("no more questions: %w", ErrPrecondition)
	ErrInterviewComplete    = fmt.Errorf("interview already complete: %w", ErrPrecondition)
	ErrFeedbackNotReady     = fmt.Errorf("feedback not ready: %w", ErrPrecondition)
)
