package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/moodjournal/internal/auth"
	"github.com/yourname/moodjournal/internal/service"
)

func GetActivities(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		acts, err := service.ListActivities(c.Request.Context(), app.Repos(), app.Catalog(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch activities")
			return
		}

		HandleSuccess(c, app.Logger(), acts, nil)
	}
}

func PostActivity(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		var body service.ActivityRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateActivityRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		act, err := service.AddActivity(c.Request.Context(), app.Repos(), app.Catalog(), user, &body)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save activity")
			return
		}

		HandleCreated(c, app.Logger(), act)
	}
}

func DeleteActivity(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		if err := service.DeleteActivity(c.Request.Context(), app.Repos(), app.Catalog(), user, c.Param("id")); err != nil {
			HandleStoreError(c, app.Logger(), err, "Failed to delete activity")
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func ResetActivities(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		acts, err := service.ResetActivities(c.Request.Context(), app.Repos(), app.Catalog(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to reset activities")
			return
		}

		HandleSuccess(c, app.Logger(), acts, nil)
	}
}
