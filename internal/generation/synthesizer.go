// Package generation turns role, seniority and transcripts into interview
// questions and feedback. The model-backed Synthesizer may fail; Pipeline
// never does, substituting deterministic fallbacks on any error.
package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/abhishek622/interviewly/internal/llm"
	"github.com/abhishek622/interviewly/pkg/model"
)

const (
	minScore = 1
	maxScore = 10

	defaultRating = 5
	noSummary     = "No recommendation provided"
)

// Synthesizer produces questions and feedback from an external capability.
type Synthesizer interface {
	SynthesizeQuestions(ctx context.Context, role, seniority string, count int) ([]string, error)
	SynthesizeFeedback(ctx context.Context, role, seniority string, answers []model.Answer) (*model.Feedback, error)
}

var _ Synthesizer = (*LLMSynthesizer)(nil)

// LLMSynthesizer implements Synthesizer on top of an llm.Client.
type LLMSynthesizer struct {
	client llm.Client
}

func NewLLMSynthesizer(client llm.Client) *LLMSynthesizer {
	return &LLMSynthesizer{client: client}
}

func (s *LLMSynthesizer) SynthesizeQuestions(ctx context.Context, role, seniority string, count int) ([]string, error) {
	raw, err := s.client.Complete(ctx, questionsPrompt(role, seniority, count))
	if err != nil {
		return nil, err
	}
	raw = llm.CleanJSON(raw)
	if err := validate(questionsSchema, raw); err != nil {
		return nil, fmt.Errorf("questions: %w", err)
	}

	var questions []string
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("questions: decode: %w", err)
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

type detailedFeedback struct {
	QuestionAsked       string   `json:"question_asked"`
	CandidateResponse   string   `json:"candidate_response"`
	Rating              *float64 `json:"rating"`
	Strengths           []string `json:"strengths"`
	Improvements        []string `json:"improvements"`
	AlignmentToRole     string   `json:"alignment_to_role"`
	FollowUpSuggestions []string `json:"follow_up_suggestions"`
}

type feedbackResponse struct {
	OverallScore          float64            `json:"overall_score"`
	SummaryStrengths      []string           `json:"summary_strengths"`
	DevelopmentAreas      []string           `json:"development_areas"`
	DetailedFeedback      []detailedFeedback `json:"detailed_feedback"`
	RecommendationSummary string             `json:"recommendation_summary"`
	NextSteps             string             `json:"next_steps"`
}

func (s *LLMSynthesizer) SynthesizeFeedback(ctx context.Context, role, seniority string, answers []model.Answer) (*model.Feedback, error) {
	raw, err := s.client.Complete(ctx, feedbackPrompt(role, seniority, answers))
	if err != nil {
		return nil, err
	}
	raw = llm.CleanJSON(raw)
	if err := validate(feedbackSchema, raw); err != nil {
		return nil, fmt.Errorf("feedback: %w", err)
	}

	var resp feedbackResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("feedback: decode: %w", err)
	}
	if len(resp.DetailedFeedback) != len(answers) {
		return nil, fmt.Errorf("feedback: got %d detailed items for %d answers", len(resp.DetailedFeedback), len(answers))
	}
	return mapFeedback(resp, answers), nil
}

// mapFeedback converts the model's schema into the canonical record.
// Question and answer text come from the transcript so entries always line up
// with the session's answers.
func mapFeedback(resp feedbackResponse, answers []model.Answer) *model.Feedback {
	qf := make([]model.QuestionFeedback, len(answers))
	for i, item := range resp.DetailedFeedback {
		rating := float64(defaultRating)
		if item.Rating != nil {
			rating = *item.Rating
		}
		qf[i] = model.QuestionFeedback{
			Question: answers[i].Question,
			Answer:   answers[i].Answer,
			Score:    clampScore(rating),
			Feedback: composeFeedback(item),
		}
	}

	summary := resp.RecommendationSummary
	if summary == "" {
		summary = noSummary
	}

	return &model.Feedback{
		OverallScore:     clampScore(resp.OverallScore),
		Strengths:        nonNil(resp.SummaryStrengths),
		Weaknesses:       nonNil(resp.DevelopmentAreas),
		QuestionFeedback: qf,
		FeedbackSummary:  summary,
	}
}

func composeFeedback(item detailedFeedback) string {
	return fmt.Sprintf("Strengths: %s. Improvements: %s. Role alignment: %s",
		strings.Join(item.Strengths, ", "),
		strings.Join(item.Improvements, ", "),
		item.AlignmentToRole,
	)
}

func clampScore(v float64) int {
	if math.IsNaN(v) {
		return minScore
	}
	n := int(math.Round(v))
	if n < minScore {
		return minScore
	}
	if n > maxScore {
		return maxScore
	}
	return n
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
