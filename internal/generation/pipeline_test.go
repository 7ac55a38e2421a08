package generation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhishek622/interviewly/internal/generation"
	"github.com/abhishek622/interviewly/internal/mock"
	"github.com/abhishek622/interviewly/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPipeline_NoCapability(t *testing.T) {
	t.Parallel()
	p := generation.NewPipeline(nil, time.Second, zap.NewNop())

	assert.False(t, p.Configured())
	assert.Equal(t, generation.FallbackQuestions(4), p.Questions(context.Background(), "SRE", "Mid", 4))
	assert.Equal(t, generation.FallbackFeedback(twoAnswers), p.Feedback(context.Background(), "SRE", "Mid", twoAnswers))
}

func TestPipeline_Questions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		synth *mock.Synthesizer
		want  []string
	}{
		{
			name: "uses synthesized questions",
			synth: &mock.Synthesizer{
				SynthesizeQuestionsFn: func(ctx context.Context, role, seniority string, count int) ([]string, error) {
					return []string{"A?", "B?"}, nil
				},
			},
			want: []string{"A?", "B?"},
		},
		{
			name: "truncates to count",
			synth: &mock.Synthesizer{
				SynthesizeQuestionsFn: func(ctx context.Context, role, seniority string, count int) ([]string, error) {
					return []string{"A?", "B?", "C?", "D?"}, nil
				},
			},
			want: []string{"A?", "B?", "C?"},
		},
		{
			name: "falls back on error",
			synth: &mock.Synthesizer{
				SynthesizeQuestionsFn: func(ctx context.Context, role, seniority string, count int) ([]string, error) {
					return nil, errors.New("boom")
				},
			},
			want: generation.FallbackQuestions(3),
		},
		{
			name: "falls back on empty result",
			synth: &mock.Synthesizer{
				SynthesizeQuestionsFn: func(ctx context.Context, role, seniority string, count int) ([]string, error) {
					return nil, nil
				},
			},
			want: generation.FallbackQuestions(3),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := generation.NewPipeline(tt.synth, time.Second, zap.NewNop())
			assert.Equal(t, tt.want, p.Questions(context.Background(), "SRE", "Mid", 3))
		})
	}
}

func TestPipeline_QuestionsTimeout(t *testing.T) {
	t.Parallel()
	synth := &mock.Synthesizer{
		SynthesizeQuestionsFn: func(ctx context.Context, role, seniority string, count int) ([]string, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	p := generation.NewPipeline(synth, 20*time.Millisecond, zap.NewNop())

	start := time.Now()
	got := p.Questions(context.Background(), "SRE", "Mid", 2)
	assert.Equal(t, generation.FallbackQuestions(2), got)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestPipeline_Feedback(t *testing.T) {
	t.Parallel()

	good := &model.Feedback{
		OverallScore: 9,
		QuestionFeedback: []model.QuestionFeedback{
			{Question: twoAnswers[0].Question, Score: 9},
			{Question: twoAnswers[1].Question, Score: 9},
		},
		FeedbackSummary: "great",
	}

	tests := []struct {
		name string
		fn   func(ctx context.Context, role, seniority string, answers []model.Answer) (*model.Feedback, error)
		want model.Feedback
	}{
		{
			name: "uses synthesized feedback",
			fn: func(ctx context.Context, role, seniority string, answers []model.Answer) (*model.Feedback, error) {
				return good, nil
			},
			want: *good,
		},
		{
			name: "falls back on error",
			fn: func(ctx context.Context, role, seniority string, answers []model.Answer) (*model.Feedback, error) {
				return nil, errors.New("invalid json")
			},
			want: generation.FallbackFeedback(twoAnswers),
		},
		{
			name: "falls back on nil feedback",
			fn: func(ctx context.Context, role, seniority string, answers []model.Answer) (*model.Feedback, error) {
				return nil, nil
			},
			want: generation.FallbackFeedback(twoAnswers),
		},
		{
			name: "falls back when entries do not cover answers",
			fn: func(ctx context.Context, role, seniority string, answers []model.Answer) (*model.Feedback, error) {
				return &model.Feedback{OverallScore: 9}, nil
			},
			want: generation.FallbackFeedback(twoAnswers),
		},
		{
			name: "falls back on timeout",
			fn: func(ctx context.Context, role, seniority string, answers []model.Answer) (*model.Feedback, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
			want: generation.FallbackFeedback(twoAnswers),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := generation.NewPipeline(&mock.Synthesizer{SynthesizeFeedbackFn: tt.fn}, 50*time.Millisecond, zap.NewNop())
			assert.Equal(t, tt.want, p.Feedback(context.Background(), "SRE", "Mid", twoAnswers))
		})
	}
}

func TestPipeline_QuestionsFromProseWrappedReply(t *testing.T) {
	t.Parallel()
	client := &mock.LLMClient{
		CompleteFn: func(ctx context.Context, prompt string) (string, error) {
			return "Here you go:\n```json\n[\"a?\",\"b?\"]\n```", nil
		},
	}
	p := generation.NewPipeline(generation.NewLLMSynthesizer(client), time.Second, zap.NewNop())
	assert.Equal(t, []string{"a?", "b?"}, p.Questions(context.Background(), "r", "s", 2))
}

func TestPipeline_EndToEndWithLLMClient(t *testing.T) {
	t.Parallel()
	client := &mock.LLMClient{
		CompleteFn: func(ctx context.Context, prompt string) (string, error) {
			return "not json at all", nil
		},
	}
	p := generation.NewPipeline(generation.NewLLMSynthesizer(client), time.Second, zap.NewNop())
	require.True(t, p.Configured())

	assert.Equal(t, generation.FallbackQuestions(2), p.Questions(context.Background(), "SRE", "Mid", 2))
	assert.Equal(t, generation.FallbackFeedback(twoAnswers), p.Feedback(context.Background(), "SRE", "Mid", twoAnswers))
}
