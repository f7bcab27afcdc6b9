package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/catorch/aegis/internal/api/handlers"
	"github.com/catorch/aegis/internal/config"
	"github.com/catorch/aegis/internal/service"
)

func main() {
	// LOAD ENV
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("failed load config: ", err)
	}

	// LOGGER
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// SERVICES
	clickService := service.NewClickUpService(cfg.ClickUpToken, logger)
	clickService.BaseURL = cfg.ClickUpBaseURL
	reportService := service.NewReportService(clickService, logger)

	// HANDLERS
	clickupHandler := handlers.NewClickUpHandler(clickService)
	reportHandler := handlers.NewReportHandler(reportService)

	// ROUTER
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// HEALTH CHECK
	r.GET("/", handlers.Health)

	api := r.Group("/api/v1")

	// WORKSPACE ROUTES
	workspaces := api.Group("/workspaces")
	{
		workspaces.GET("", clickupHandler.GetWorkspaces)
		workspaces.GET("/:id", clickupHandler.GetWorkspace)
		workspaces.GET("/:id/spaces", clickupHandler.GetSpaces)
		workspaces.POST("/:id/spaces", clickupHandler.CreateSpace)
	}

	// SPACE ROUTES
	spaces := api.Group("/spaces")
	{
		spaces.GET("/:id", clickupHandler.GetSpace)
		spaces.PUT("/:id", clickupHandler.UpdateSpace)
		spaces.DELETE("/:id", clickupHandler.DeleteSpace)
		spaces.GET("/:id/folders", clickupHandler.GetFolders)
		spaces.POST("/:id/folders", clickupHandler.CreateFolder)
		spaces.GET("/:id/lists", clickupHandler.GetFolderlessLists)
		spaces.POST("/:id/lists", clickupHandler.CreateListInSpace)
	}

	// FOLDER ROUTES
	folders := api.Group("/folders")
	{
		folders.GET("/:id", clickupHandler.GetFolder)
		folders.PUT("/:id", clickupHandler.UpdateFolder)
		folders.DELETE("/:id", clickupHandler.DeleteFolder)
		folders.GET("/:id/lists", clickupHandler.GetLists)
		folders.POST("/:id/lists", clickupHandler.CreateListInFolder)
	}

	// LIST ROUTES
	lists := api.Group("/lists")
	{
		lists.GET("/:id", clickupHandler.GetList)
		lists.PUT("/:id", clickupHandler.UpdateList)
		lists.DELETE("/:id", clickupHandler.DeleteList)
		lists.GET("/:id/tasks", clickupHandler.GetTasks)
		lists.POST("/:id/tasks", clickupHandler.CreateTask)
	}

	// TASK ROUTES
	tasks := api.Group("/tasks")
	{
		tasks.GET("/:id", clickupHandler.GetTask)
		tasks.PUT("/:id", clickupHandler.UpdateTask)
		tasks.DELETE("/:id", clickupHandler.DeleteTask)
		tasks.GET("/:id/comments", clickupHandler.GetTaskComments)
		tasks.POST("/:id/comments", clickupHandler.AddTaskComment)
		tasks.POST("/:id/dependencies", clickupHandler.SetTaskDependencies)
	}

	// REPORT ROUTES
	api.POST("/reports/tasks", reportHandler.BuildTaskReport)

	// START SERVER
	logger.Info("Server running on port: ", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped: ", err)
	}
}
