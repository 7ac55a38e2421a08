// Package session keeps interview sessions in memory for the lifetime of the
// process.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/abhishek622/interviewly/internal/generation"
	"github.com/abhishek622/interviewly/pkg/model"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const maxIDAttempts = 3

type session struct {
	mu sync.Mutex

	id        string
	role      string
	seniority string
	questions []string
	answers   []model.Answer
	cursor    int
	startedAt time.Time
	feedback  *model.Feedback
}

func (s *session) complete() bool {
	return s.cursor >= len(s.questions)
}

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the uuid-based session id source.
func WithIDGenerator(next func() string) Option {
	return func(s *Store) { s.newID = next }
}

// Store is the registry of interview sessions. It is safe for concurrent use.
// Mutation of a single session is serialized by that session's lock; distinct
// sessions never contend.
type Store struct {
	sessions *cache.Cache
	pipeline *generation.Pipeline
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

func NewStore(pipeline *generation.Pipeline, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		sessions: cache.New(cache.NoExpiration, 0),
		pipeline: pipeline,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create generates questions for the interview and registers a new session.
func (s *Store) Create(ctx context.Context, role, seniority string, questionCount int) (string, error) {
	if questionCount < 1 {
		return "", ErrInvalidQuestionCount
	}
	questions := s.pipeline.Questions(ctx, role, seniority, questionCount)
	if len(questions) > questionCount {
		questions = questions[:questionCount]
	}

	sess := &session{
		role:      role,
		seniority: seniority,
		questions: questions,
		answers:   make([]model.Answer, 0, len(questions)),
		startedAt: s.now(),
	}

	var err error
	for range maxIDAttempts {
		sess.id = s.newID()
		if err = s.sessions.Add(sess.id, sess, cache.NoExpiration); err == nil {
			break
		}
	}
	if err != nil {
		return "", err
	}

	s.logger.Sugar().Infow("session created", "session_id", sess.id, "role", role, "seniority", seniority, "questions", len(questions))
	return sess.id, nil
}

func (s *Store) get(id string) (*session, error) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return v.(*session), nil
}

// CurrentQuestion returns the question at the session's cursor.
func (s *Store) CurrentQuestion(id string) (string, error) {
	sess, err := s.get(id)
	if err != nil {
		return "", err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.complete() {
		return "", ErrNoMoreQuestions
	}
	return sess.questions[sess.cursor], nil
}

// SubmitAnswer records the answer to the current question and advances the
// cursor. The answer that completes the interview also produces its feedback
// before SubmitAnswer returns, so the call may take as long as one
// generation request. The session stays locked throughout.
func (s *Store) SubmitAnswer(ctx context.Context, id, answer string) error {
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.complete() {
		return ErrInterviewComplete
	}

	sess.answers = append(sess.answers, model.Answer{
		Question:  sess.questions[sess.cursor],
		Answer:    answer,
		Timestamp: s.now(),
	})
	sess.cursor++

	if !sess.complete() {
		return nil
	}

	// the answer is already recorded, finish the evaluation even if the
	// client goes away
	answers := make([]model.Answer, len(sess.answers))
	copy(answers, sess.answers)
	fb := s.pipeline.Feedback(context.WithoutCancel(ctx), sess.role, sess.seniority, answers)
	sess.feedback = &fb

	s.logger.Sugar().Infow("interview completed", "session_id", id, "answers", len(answers), "overall_score", fb.OverallScore)
	return nil
}

// Feedback returns the evaluation of a completed interview.
func (s *Store) Feedback(id string) (*model.Feedback, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.feedback == nil {
		return nil, ErrFeedbackNotReady
	}
	fb := *sess.feedback
	return &fb, nil
}

func (s *Store) Progress(id string) (*model.Progress, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &model.Progress{
		SessionID:      sess.id,
		Role:           sess.role,
		Seniority:      sess.seniority,
		CurrentIndex:   sess.cursor,
		TotalQuestions: len(sess.questions),
		StartedAt:      sess.startedAt,
		Completed:      sess.feedback != nil,
	}, nil
}

// Answers returns a copy of the session's answer log.
func (s *Store) Answers(id string) ([]model.Answer, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	out := make([]model.Answer, len(sess.answers))
	copy(out, sess.answers)
	return out, nil
}

// Len reports how many sessions are registered.
func (s *Store) Len() int {
	return s.sessions.ItemCount()
}
