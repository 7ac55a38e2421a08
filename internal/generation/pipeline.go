package generation

import (
	"context"
	"errors"
	"time"

	"github.com/abhishek622/interviewly/pkg/model"
	"go.uber.org/zap"
)

var (
	errNoQuestions   = errors.New("synthesizer returned no questions")
	errFeedbackShape = errors.New("synthesizer feedback does not cover every answer")
)

// Pipeline is the total front of the generation layer: every call returns
// usable content. A nil synthesizer means no capability is configured.
type Pipeline struct {
	synth   Synthesizer
	timeout time.Duration
	logger  *zap.Logger
}

func NewPipeline(synth Synthesizer, timeout time.Duration, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{synth: synth, timeout: timeout, logger: logger}
}

// Configured reports whether a generation capability is available.
func (p *Pipeline) Configured() bool {
	return p.synth != nil
}

func (p *Pipeline) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

// Questions returns at most count questions for the role and seniority.
func (p *Pipeline) Questions(ctx context.Context, role, seniority string, count int) []string {
	log := p.logger.Sugar()
	if p.synth == nil {
		log.Debugw("no generation capability, using fallback questions", "count", count)
		return FallbackQuestions(count)
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	questions, err := p.synth.SynthesizeQuestions(ctx, role, seniority, count)
	if err == nil && len(questions) == 0 {
		err = errNoQuestions
	}
	if err != nil {
		log.Warnw("question generation failed, using fallback", "role", role, "seniority", seniority, "count", count, "duration", time.Since(start), "err", err)
		return FallbackQuestions(count)
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	log.Infow("questions generated", "role", role, "seniority", seniority, "count", len(questions), "duration", time.Since(start))
	return questions
}

// Feedback evaluates a finished transcript.
func (p *Pipeline) Feedback(ctx context.Context, role, seniority string, answers []model.Answer) model.Feedback {
	log := p.logger.Sugar()
	if p.synth == nil {
		log.Debugw("no generation capability, using fallback feedback", "answers", len(answers))
		return FallbackFeedback(answers)
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	fb, err := p.synth.SynthesizeFeedback(ctx, role, seniority, answers)
	if err == nil && (fb == nil || len(fb.QuestionFeedback) != len(answers)) {
		err = errFeedbackShape
	}
	if err != nil {
		log.Warnw("feedback generation failed, using fallback", "role", role, "answers", len(answers), "duration", time.Since(start), "err", err)
		return FallbackFeedback(answers)
	}
	log.Infow("feedback generated", "role", role, "answers", len(answers), "overall_score", fb.OverallScore, "duration", time.Since(start))
	return *fb
}
