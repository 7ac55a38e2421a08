// Package mock provides test doubles using function fields.
package mock

import (
	"context"

	"github.com/abhishek622/interviewly/internal/generation"
	"github.com/abhishek622/interviewly/internal/handler"
	"github.com/abhishek622/interviewly/internal/llm"
	"github.com/abhishek622/interviewly/pkg/model"
)

var (
	_ llm.Client             = (*LLMClient)(nil)
	_ generation.Synthesizer = (*Synthesizer)(nil)
	_ handler.SessionStore   = (*SessionStore)(nil)
)

// LLMClient is a test double for llm.Client.
// Set CompleteFn before calling Complete.
type LLMClient struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
}

func (c *LLMClient) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteFn(ctx, prompt)
}

func (c *LLMClient) Name() string { return "mock" }

// Synthesizer is a test double for generation.Synthesizer.
type Synthesizer struct {
	SynthesizeQuestionsFn func(ctx context.Context, role, seniority string, count int) ([]string, error)
	SynthesizeFeedbackFn  func(ctx context.Context, role, seniority string, answers []model.Answer) (*model.Feedback, error)
}

func (s *Synthesizer) SynthesizeQuestions(ctx context.Context, role, seniority string, count int) ([]string, error) {
	return s.SynthesizeQuestionsFn(ctx, role, seniority, count)
}

func (s *Synthesizer) SynthesizeFeedback(ctx context.Context, role, seniority string, answers []model.Answer) (*model.Feedback, error) {
	return s.SynthesizeFeedbackFn(ctx, role, seniority, answers)
}

// SessionStore is a test double for handler.SessionStore.
type SessionStore struct {
	CreateFn          func(ctx context.Context, role, seniority string, questionCount int) (string, error)
	CurrentQuestionFn func(id string) (string, error)
	SubmitAnswerFn    func(ctx context.Context, id, answer string) error
	FeedbackFn        func(id string) (*model.Feedback, error)
	ProgressFn        func(id string) (*model.Progress, error)
}

func (s *SessionStore) Create(ctx context.Context, role, seniority string, questionCount int) (string, error) {
	return s.CreateFn(ctx, role, seniority, questionCount)
}

func (s *SessionStore) CurrentQuestion(id string) (string, error) {
	return s.CurrentQuestionFn(id)
}

func (s *SessionStore) SubmitAnswer(ctx context.Context, id, answer string) error {
	return s.SubmitAnswerFn(ctx, id, answer)
}

func (s *SessionStore) Feedback(id string) (*model.Feedback, error) {
	return s.FeedbackFn(id)
}

func (s *SessionStore) Progress(id string) (*model.Progress, error) {
	return s.ProgressFn(id)
}
