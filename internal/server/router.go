package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/zulandar/konoha/internal/config"
	"github.com/zulandar/konoha/internal/schema"
	"gorm.io/gorm"
)

func init() {
	// Validation failures must name wire fields, not Go struct fields.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		schema.RegisterTagNames(v)
	}
}

// registerRoutes sets up all API routes on the gin router. Resource
// routes live under the configured prefix; root and health do not.
func registerRoutes(router *gin.Engine, gormDB *gorm.DB, cfg *config.Config, version string) {
	router.GET("/", handleRoot(cfg, version))
	router.GET("/health", handleHealth())
	router.GET("/health/db", handleHealthDB(gormDB))

	api := router.Group(cfg.App.Prefix)

	tasks := api.Group("/tasks")
	tasks.POST("", handleTaskCreate(gormDB))
	tasks.GET("", handleTaskList(gormDB))
	tasks.GET("/:id", handleTaskGet(gormDB))
	tasks.PATCH("/:id", handleTaskUpdate(gormDB))
	tasks.DELETE("/:id", handleTaskDelete(gormDB))

	characters := api.Group("/characters")
	characters.POST("", handleCharacterCreate(gormDB))
	characters.GET("", handleCharacterList(gormDB))
	characters.GET("/:id", handleCharacterGet(gormDB))
	characters.PATCH("/:id", handleCharacterUpdate(gormDB))
	characters.DELETE("/:id", handleCharacterDelete(gormDB))
	characters.POST("/:id/jutsus", handleCharacterAddJutsu(gormDB))

	jutsus := api.Group("/jutsus")
	jutsus.POST("", handleJutsuCreate(gormDB))
	jutsus.GET("", handleJutsuList(gormDB))
	jutsus.GET("/:id", handleJutsuGet(gormDB))
	jutsus.PATCH("/:id", handleJutsuUpdate(gormDB))
	jutsus.DELETE("/:id", handleJutsuDelete(gormDB))
}

func handleRoot(cfg *config.Config, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"app_name": cfg.App.Name,
			"version":  version,
		})
	}
}
