package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/konoha/internal/jutsu"
	"github.com/zulandar/konoha/internal/pagination"
	"github.com/zulandar/konoha/internal/schema"
	"gorm.io/gorm"
)

func handleJutsuCreate(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in schema.JutsuCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			respondValidationError(c, err)
			return
		}
		created, err := jutsu.Create(requestDB(gormDB, c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, schema.NewJutsuRead(*created))
	}
}

func handleJutsuList(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q schema.JutsuListQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			respondValidationError(c, err)
			return
		}
		page, err := jutsu.List(requestDB(gormDB, c), q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, pagination.Map(page, schema.NewJutsuRead))
	}
}

func handleJutsuGet(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		found, err := jutsu.Get(requestDB(gormDB, c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, schema.NewJutsuRead(*found))
	}
}

func handleJutsuUpdate(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		var in schema.JutsuUpdate
		if err := c.ShouldBindJSON(&in); err != nil {
			respondValidationError(c, err)
			return
		}
		updated, err := jutsu.Update(requestDB(gormDB, c), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, schema.NewJutsuRead(*updated))
	}
}

func handleJutsuDelete(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		if err := jutsu.Delete(requestDB(gormDB, c), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
