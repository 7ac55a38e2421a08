package generation

import "github.com/abhishek622/interviewly/pkg/model"

var fallbackQuestions = []string{
	"Tell me about yourself.",
	"Why do you want to work here?",
	"What are your strengths?",
	"What are your weaknesses?",
	"Where do you see yourself in 5 years?",
	"Can you describe a challenging situation you've faced and how you handled it?",
	"Why are you interested in this position?",
	"How do you handle stress and pressure?",
	"What motivates you?",
	"Describe your ideal work environment.",
}

const (
	fallbackScore            = 7
	fallbackQuestionFeedback = "Good answer, could elaborate more on specific experiences."
	fallbackSummary          = "Strong potential with opportunities for improvement"
)

// FallbackQuestions returns count generic questions in a fixed order. The
// built-in list is cycled when count exceeds its length.
func FallbackQuestions(count int) []string {
	if count <= 0 {
		return []string{}
	}
	out := make([]string, count)
	for i := range out {
		out[i] = fallbackQuestions[i%len(fallbackQuestions)]
	}
	return out
}

// FallbackFeedback builds the generic evaluation used whenever the model
// cannot produce one. It has one entry per answer, in answer order.
func FallbackFeedback(answers []model.Answer) model.Feedback {
	qf := make([]model.QuestionFeedback, len(answers))
	for i, a := range answers {
		qf[i] = model.QuestionFeedback{
			Question: a.Question,
			Answer:   a.Answer,
			Score:    fallbackScore,
			Feedback: fallbackQuestionFeedback,
		}
	}
	return model.Feedback{
		OverallScore:     fallbackScore,
		Strengths:        []string{"Good communication skills", "Relevant experience"},
		Weaknesses:       []string{"Could provide more specific examples"},
		QuestionFeedback: qf,
		FeedbackSummary:  fallbackSummary,
	}
}
