package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if !app.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.requestLogger())
	r.Use(app.cors())

	r.GET("/", app.Handler.HealthCheck)

	interview := r.Group("/interview")
	{
		interview.POST("/start", app.Handler.StartInterview)
		interview.GET("/question", app.Handler.GetQuestion)
		interview.POST("/answer", app.Handler.SubmitAnswer)
		interview.GET("/feedback", app.Handler.GetFeedback)
		interview.GET("/session", app.Handler.GetProgress)
	}

	return r
}
