package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetCatalog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat := app.Catalog()
		HandleSuccess(c, app.Logger(), gin.H{
			"emotions":   cat.Emotions,
			"activities": cat.DefaultActivities,
		}, nil)
	}
}

func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
