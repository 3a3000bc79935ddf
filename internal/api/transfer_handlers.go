package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/moodjournal/internal/auth"
	"github.com/yourname/moodjournal/internal/service"
)

// GetExport writes the raw bundle without the envelope.
func GetExport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		b, err := service.Export(c.Request.Context(), app.Repos(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to export")
			return
		}

		c.Header("Content-Disposition", `attachment; filename="emotitime-backup.json"`)
		c.JSON(http.StatusOK, b)
	}
}

func PostImport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		b, err := service.ParseBundle(c.Request.Body)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid bundle")
			return
		}

		sum, err := service.Import(c.Request.Context(), app.Repos(), app.Catalog(), user, b)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to import")
			return
		}

		app.Logger().Infof("import: user=%s records=%d activities=%d profile=%t", user.ID, sum.Records, sum.Activities, sum.Profile)
		HandleSuccess(c, app.Logger(), sum, nil)
	}
}
