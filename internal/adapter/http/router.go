package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"taskmaster/internal/adapter/http/handler"
	"taskmaster/internal/adapter/http/middleware"
	"taskmaster/pkg/metrics"
)

type HandlersConfig struct {
	HealthHandler *handler.HealthHandler
	TaskHandler   *handler.TaskHandler
}

func SetupRouter(handlers HandlersConfig, m *metrics.AppMetrics, logger zerolog.Logger) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Metrics(m))

	router.GET("/", handlers.HealthHandler.Root)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	tasks := router.Group("/tasks")
	{
		tasks.GET("", handlers.TaskHandler.ListTasks)
		tasks.POST("", handlers.TaskHandler.CreateTask)
		tasks.GET("/:id", handlers.TaskHandler.GetTask)
		tasks.PUT("/:id", handlers.TaskHandler.UpdateTask)
		tasks.DELETE("/:id", handlers.TaskHandler.DeleteTask)
	}

	return router
}
