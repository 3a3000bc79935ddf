package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/moodjournal/internal/auth"
	"github.com/yourname/moodjournal/internal/service"
)

// GetProfile answers with null data until the user onboards.
func GetProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		p, err := service.GetProfile(c.Request.Context(), app.Repos(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch profile")
			return
		}

		HandleSuccess(c, app.Logger(), p, map[string]any{"onboarded": p != nil})
	}
}

func PutProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		var body service.ProfileRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateProfileRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		p, err := service.SaveProfile(c.Request.Context(), app.Repos(), user, &body)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save profile")
			return
		}

		HandleSuccess(c, app.Logger(), p, nil)
	}
}
