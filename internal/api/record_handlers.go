package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/moodjournal/internal/auth"
	"github.com/yourname/moodjournal/internal/service"
)

func PostRecord(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		var body service.RecordRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateRecordRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		rec, err := service.CreateRecord(c.Request.Context(), app.Repos(), user, &body, app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save record")
			return
		}

		HandleCreated(c, app.Logger(), rec)
	}
}

func GetRecords(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		recs, err := app.Repos().ListRecords(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch records")
			return
		}

		HandleSuccess(c, app.Logger(), recs, map[string]any{"count": len(recs)})
	}
}

func DeleteRecord(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		if err := service.DeleteRecord(c.Request.Context(), app.Repos(), user, c.Param("id")); err != nil {
			HandleStoreError(c, app.Logger(), err, "Failed to delete record")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
