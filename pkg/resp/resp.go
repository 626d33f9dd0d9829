package resp

import (
	"errors"
	"net/http"

	"backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": gin.H{"kind": apperr.KindValidation, "message": msg}})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": gin.H{"kind": apperr.KindUnauthorized, "message": msg}})
}

var kindStatus = map[apperr.Kind]int{
	apperr.KindNotFound:         http.StatusNotFound,
	apperr.KindValidation:       http.StatusBadRequest,
	apperr.KindInvalidState:     http.StatusConflict,
	apperr.KindEmptyCart:        http.StatusBadRequest,
	apperr.KindMissingSelection: http.StatusBadRequest,
	apperr.KindUnauthorized:     http.StatusForbidden,
	apperr.KindUnavailable:      http.StatusServiceUnavailable,
}

// Error maps a service error onto a status code via its kind. Untyped errors
// become an opaque 500; the cause stays server-side.
func Error(c *gin.Context, err error) {
	var e *apperr.Error
	if errors.As(err, &e) {
		status, ok := kindStatus[e.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"ok": false, "error": gin.H{"kind": e.Kind, "message": e.Msg}})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": gin.H{"kind": "internal", "message": "server error"}})
}
