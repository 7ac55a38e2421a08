package model

import "time"

// Answer is one entry of a session's answer log.
type Answer struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}

type QuestionFeedback struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Feedback is the final evaluation of a completed interview. The shape is
// the same whether it came from the model or from the fallback.
type Feedback struct {
	OverallScore     int                `json:"overall_score"`
	Strengths        []string           `json:"strengths"`
	Weaknesses       []string           `json:"weaknesses"`
	QuestionFeedback []QuestionFeedback `json:"question_feedback"`
	FeedbackSummary  string             `json:"feedback_summary"`
}

// Progress is a read-only view of where a session stands.
type Progress struct {
	SessionID      string    `json:"session_id"`
	Role           string    `json:"role"`
	Seniority      string    `json:"seniority"`
	CurrentIndex   int       `json:"current_index"`
	TotalQuestions int       `json:"total_questions"`
	StartedAt      time.Time `json:"started_at"`
	Completed      bool      `json:"completed"`
}

type StartInterviewReq struct {
	Role         string `json:"role" binding:"required"`
	Seniority    string `json:"seniority" binding:"required"`
	NumQuestions int    `json:"numQuestions" binding:"required,min=1"`
}

type SessionQuery struct {
	SessionID string `form:"session_id" binding:"required"`
}

type AnswerReq struct {
	Answer string `json:"answer" binding:"required"`
}
