package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes used in the response envelope
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
)

// HandleInvalidRequest handles a malformed request body.
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

// HandleInternalError hides err from the caller behind a generic message.
func HandleInternalError(c *gin.Context) {
	respondError(c, http.StatusInternalServerError, CodeInternalError, "internal server error")
}
