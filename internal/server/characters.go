package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/konoha/internal/character"
	"github.com/zulandar/konoha/internal/pagination"
	"github.com/zulandar/konoha/internal/schema"
	"gorm.io/gorm"
)

func handleCharacterCreate(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in schema.CharacterCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			respondValidationError(c, err)
			return
		}
		created, err := character.Create(requestDB(gormDB, c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, schema.NewCharacterRead(*created))
	}
}

func handleCharacterList(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q schema.ListQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			respondValidationError(c, err)
			return
		}
		page, err := character.List(requestDB(gormDB, c), q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, pagination.Map(page, schema.NewCharacterRead))
	}
}

func handleCharacterGet(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		found, err := character.Get(requestDB(gormDB, c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, schema.NewCharacterRead(*found))
	}
}

func handleCharacterUpdate(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		var in schema.CharacterUpdate
		if err := c.ShouldBindJSON(&in); err != nil {
			respondValidationError(c, err)
			return
		}
		updated, err := character.Update(requestDB(gormDB, c), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, schema.NewCharacterRead(*updated))
	}
}

func handleCharacterDelete(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		if err := character.Delete(requestDB(gormDB, c), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleCharacterAddJutsu(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		var in schema.JutsuCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			respondValidationError(c, err)
			return
		}
		created, err := character.AddJutsu(requestDB(gormDB, c), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, schema.NewJutsuRead(*created))
	}
}
