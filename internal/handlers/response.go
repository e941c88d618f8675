package handlers

import (
	"errors"
	"net/http"

	"cardquest-service/internal/quiz"
	"cardquest-service/internal/service"

	"github.com/gin-gonic/gin"
)

// respondSuccess wraps data in the service's response envelope.
func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondError maps a structured error onto an HTTP status and a
// stable code clients can branch on. Anything unrecognized is an
// infrastructure failure.
func respondError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	switch {
	case errors.Is(err, quiz.ErrUnknownCategory):
		status, code = http.StatusNotFound, "UNKNOWN_CATEGORY"
	case errors.Is(err, quiz.ErrExhausted):
		status, code = http.StatusConflict, "CATEGORY_EXHAUSTED"
	case errors.Is(err, quiz.ErrInstanceNotFound):
		status, code = http.StatusNotFound, "INSTANCE_NOT_FOUND"
	case errors.Is(err, quiz.ErrAlreadyAnswered):
		status, code = http.StatusConflict, "ALREADY_ANSWERED"
	case errors.Is(err, service.ErrUserNotFound):
		status, code = http.StatusNotFound, "USER_NOT_FOUND"
	case errors.Is(err, service.ErrUserExists):
		status, code = http.StatusConflict, "USER_EXISTS"
	case errors.Is(err, service.ErrInvalidCardHash):
		status, code = http.StatusBadRequest, "INVALID_CARD_HASH"
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error(), "code": code})
}

// respondBadRequest reports malformed path input.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message, "code": "INVALID_REQUEST"})
}
