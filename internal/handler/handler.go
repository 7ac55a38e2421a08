package handler

import (
	"context"

	"github.com/abhishek622/interviewly/pkg/model"
	"go.uber.org/zap"
)

// SessionStore is what the handlers need from the session registry.
type SessionStore interface {
	Create(ctx context.Context, role, seniority string, questionCount int) (string, error)
	CurrentQuestion(id string) (string, error)
	SubmitAnswer(ctx context.Context, id, answer string) error
	Feedback(id string) (*model.Feedback, error)
	Progress(id string) (*model.Progress, error)
}

type Handler struct {
	Logger       *zap.Logger
	Store        SessionStore
	MaxQuestions int
}
