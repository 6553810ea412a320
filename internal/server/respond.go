package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/konoha/internal/errs"
	"github.com/zulandar/konoha/internal/schema"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// errorBody is the generic HTTP error shape.
type errorBody struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id"`
}

// respondError maps a classified repository failure to its status code.
// Only the client-safe detail goes on the wire; the wrapped cause is
// logged with the correlation id.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		status = http.StatusNotFound
	case errs.KindInvalid:
		status = http.StatusBadRequest
	}

	log := loggerFrom(c)
	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", requestIDFrom(c)),
		zap.Error(err),
	}
	if status == http.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Warn("request rejected", fields...)
	}

	c.AbortWithStatusJSON(status, errorBody{
		Detail:    errs.DetailOf(err, "Internal server error"),
		RequestID: requestIDFrom(c),
	})
}

// respondValidationError renders a binding failure as the 422 body.
func respondValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, schema.NewValidationErrorBody(err, c.Request.URL.Path))
}

// bindID parses the :id path parameter. On failure it has already
// written the 422 response.
func bindID(c *gin.Context) (uint, bool) {
	var p struct {
		ID uint `uri:"id" binding:"min=1"`
	}
	if err := c.ShouldBindUri(&p); err != nil {
		respondValidationError(c, err)
		return 0, false
	}
	return p.ID, true
}

// requestDB scopes the shared handle to this request's context, so
// store calls stop when the client goes away.
func requestDB(gormDB *gorm.DB, c *gin.Context) *gorm.DB {
	return gormDB.WithContext(c.Request.Context())
}
