package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/konoha/internal/pagination"
	"github.com/zulandar/konoha/internal/schema"
	"github.com/zulandar/konoha/internal/task"
	"gorm.io/gorm"
)

func handleTaskCreate(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in schema.TaskCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			respondValidationError(c, err)
			return
		}
		created, err := task.Create(requestDB(gormDB, c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, schema.NewTaskRead(*created))
	}
}

func handleTaskList(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q schema.ListQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			respondValidationError(c, err)
			return
		}
		page, err := task.List(requestDB(gormDB, c), q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, pagination.Map(page, schema.NewTaskRead))
	}
}

func handleTaskGet(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		found, err := task.Get(requestDB(gormDB, c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, schema.NewTaskRead(*found))
	}
}

func handleTaskUpdate(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		var in schema.TaskUpdate
		if err := c.ShouldBindJSON(&in); err != nil {
			respondValidationError(c, err)
			return
		}
		updated, err := task.Update(requestDB(gormDB, c), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, schema.NewTaskRead(*updated))
	}
}

func handleTaskDelete(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		if err := task.Delete(requestDB(gormDB, c), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
