package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/moodjournal/internal/auth"
	"github.com/yourname/moodjournal/internal/service"
)

func GetInsights(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		now, err := localNow(c, app)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid tz")
			return
		}

		res, err := service.BuildInsights(c.Request.Context(), app.Repos(), app.Catalog(), app.InsightEngine(), user, now)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to compute insights")
			return
		}

		HandleSuccess(c, app.Logger(), res, nil)
	}
}

func GetMentorNote(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		now, err := localNow(c, app)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid tz")
			return
		}

		note, err := service.BuildMentorNote(c.Request.Context(), app.Repos(), app.MentorEngine(), user, now)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to build mentor note")
			return
		}

		HandleSuccess(c, app.Logger(), note, nil)
	}
}

// PostReflection always answers 200 once the journal is readable. Model
// failures are reported inside the reflection text.
func PostReflection(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		text, err := service.GenerateReflection(c.Request.Context(), app.Repos(), app.Catalog(), app.Reflector(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to generate reflection")
			return
		}

		HandleSuccess(c, app.Logger(), gin.H{"reflection": text}, nil)
	}
}
