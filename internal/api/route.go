package api

import (
	"Milestone/internal/api/middleware"
	"Milestone/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("")
		authGroup.Use(middleware.IdentityMiddleware())

		metricsGroup := authGroup.Group("/metrics")
		{
			metricsGroup.PUT("", group.MetricHandler.Upsert)
			metricsGroup.GET("", group.MetricHandler.GetRange)
			metricsGroup.GET("/today", group.MetricHandler.GetToday)
			metricsGroup.GET("/summary", group.MetricHandler.GetSummary)
		}

		contactGroup := authGroup.Group("/contacts")
		{
			contactGroup.POST("", group.ContactHandler.Create)
			contactGroup.GET("", group.ContactHandler.List)
			contactGroup.GET("/:id", group.ContactHandler.Get)
			contactGroup.PUT("/:id", group.ContactHandler.Update)
			contactGroup.DELETE("/:id", group.ContactHandler.Delete)
			contactGroup.POST("/import", group.ContactHandler.ImportCSV)
			contactGroup.POST("/:id/interactions", group.ContactHandler.AddInteraction)
			contactGroup.GET("/:id/interactions", group.ContactHandler.ListInteractions)
		}

		goalGroup := authGroup.Group("/goals")
		{
			goalGroup.PUT("", group.GoalHandler.Upsert)
			goalGroup.GET("", group.GoalHandler.Get)
			goalGroup.GET("/progress", group.GoalHandler.Progress)
		}

		targetGroup := authGroup.Group("/targets")
		{
			targetGroup.PUT("", group.TargetHandler.Upsert)
			targetGroup.GET("", group.TargetHandler.Get)
			targetGroup.GET("/daily-progress", group.TargetHandler.DailyProgress)
		}

		reportGroup := authGroup.Group("/reports")
		{
			reportGroup.GET("/data", group.ReportHandler.GetData)
			reportGroup.GET("/download", group.ReportHandler.Download)
			reportGroup.POST("/email", group.ReportHandler.SendEmail)
		}

		emailGroup := authGroup.Group("/email")
		{
			emailGroup.PUT("/preferences", group.EmailHandler.UpsertPreference)
			emailGroup.GET("/preferences", group.EmailHandler.GetPreference)
			emailGroup.GET("/logs", group.EmailHandler.ListLogs)
		}
	}

	return r
}
