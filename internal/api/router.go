package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/moodjournal/internal/auth"
)

func NewRouter(app App, provider auth.Provider) *gin.Engine {
	metrics := NewMetrics()
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), RequestLogger(app.Logger()), metrics.Middleware(), CORS())

	r.GET("/healthz", Healthz)
	r.GET("/metrics", metrics.Handler())
	r.GET("/catalog", GetCatalog(app))

	protected := r.Group("/", auth.AuthMiddleware(provider))
	protected.POST("/records", PostRecord(app))
	protected.GET("/records", GetRecords(app))
	protected.DELETE("/records/:id", DeleteRecord(app))

	protected.GET("/activities", GetActivities(app))
	protected.POST("/activities", PostActivity(app))
	protected.DELETE("/activities/:id", DeleteActivity(app))
	protected.POST("/activities/reset", ResetActivities(app))

	protected.GET("/profile", GetProfile(app))
	protected.PUT("/profile", PutProfile(app))

	protected.GET("/insights", GetInsights(app))
	protected.GET("/mentor", GetMentorNote(app))
	protected.POST("/reflection", PostReflection(app))

	protected.GET("/export", GetExport(app))
	protected.POST("/import", PostImport(app))

	return r
}
