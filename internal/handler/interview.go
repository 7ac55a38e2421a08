package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/abhishek622/interviewly/internal/session"
	"github.com/abhishek622/interviewly/pkg/model"
	"github.com/abhishek622/interviewly/pkg/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) StartInterview(c *gin.Context) {
	var req model.StartInterviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if h.MaxQuestions > 0 && req.NumQuestions > h.MaxQuestions {
		response.BadRequest(c, fmt.Sprintf("numQuestions must be between 1 and %d", h.MaxQuestions))
		return
	}

	id, err := h.Store.Create(c.Request.Context(), req.Role, req.Seniority, req.NumQuestions)
	if errors.Is(err, session.ErrPrecondition) {
		response.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		h.Logger.Sugar().Errorw("failed to create session", "role", req.Role, "err", err)
		response.InternalError(c, "failed to start interview")
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": id})
}

func (h *Handler) GetQuestion(c *gin.Context) {
	id, ok := bindSessionID(c)
	if !ok {
		return
	}

	question, err := h.Store.CurrentQuestion(id)
	if err != nil {
		h.sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}

// SubmitAnswer blocks until feedback is ready when the answer completes the
// interview.
func (h *Handler) SubmitAnswer(c *gin.Context) {
	id, ok := bindSessionID(c)
	if !ok {
		return
	}

	var req model.AnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.Store.SubmitAnswer(c.Request.Context(), id, req.Answer); err != nil {
		h.sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) GetFeedback(c *gin.Context) {
	id, ok := bindSessionID(c)
	if !ok {
		return
	}

	fb, err := h.Store.Feedback(id)
	if err != nil {
		h.sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, fb)
}

func (h *Handler) GetProgress(c *gin.Context) {
	id, ok := bindSessionID(c)
	if !ok {
		return
	}

	p, err := h.Store.Progress(id)
	if err != nil {
		h.sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Interviewly is up and running!"})
}

func bindSessionID(c *gin.Context) (string, bool) {
	var q model.SessionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "session_id is required")
		return "", false
	}
	return q.SessionID, true
}

func (h *Handler) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		response.NotFound(c, "Session not found")
	case errors.Is(err, session.ErrNoMoreQuestions):
		response.BadRequest(c, "No more questions")
	case errors.Is(err, session.ErrInterviewComplete):
		response.BadRequest(c, "Interview already complete")
	case errors.Is(err, session.ErrFeedbackNotReady):
		response.BadRequest(c, "Feedback not ready yet")
	case errors.Is(err, session.ErrPrecondition):
		response.BadRequest(c, err.Error())
	default:
		h.Logger.Sugar().Errorw("session operation failed", "path", c.Request.URL.Path, "err", err)
		response.InternalError(c, "")
	}
}
