package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-backend/apperrors"
	"hotelops-backend/utils"
)

// respondError maps a service error to the JSON envelope. Typed errors
// keep their message and status; anything else is logged and reported
// as a generic failure (internals only leak in debug mode).
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.As(err); ok {
		if appErr.Kind == apperrors.KindInternal || appErr.Kind == apperrors.KindTransaction {
			log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		message := appErr.Message
		if appErr.Kind == apperrors.KindInternal && gin.Mode() != gin.DebugMode {
			message = "internal error"
		}
		utils.JSONError(c, appErr.HTTPStatus(), message)
		return
	}
	log.Printf("%s %s: unexpected error: %v", c.Request.Method, c.Request.URL.Path, err)
	message := "internal error"
	if gin.Mode() == gin.DebugMode {
		message = err.Error()
	}
	utils.JSONError(c, http.StatusInternalServerError, message)
}

func respondBindError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
}
