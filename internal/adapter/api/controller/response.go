package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixell-river/hr-directory/internal/adapter/api/dto"
	"github.com/pixell-river/hr-directory/pkg/logger"
	"github.com/pixell-river/hr-directory/pkg/middleware"
)

// Messages shared by the resource controllers.
const (
	MsgMissingFields     = "Missing required fields"
	MsgInvalidBody       = "Invalid request body"
	MsgInternalError     = middleware.MsgInternalError
	MsgRouteNotFound     = "Route not found"
	MsgBranchNotFound    = "Branch not found"
	MsgEmployeeNotFound  = "Employee not found"
	MsgInvalidBranchID   = "Invalid branch ID"
	MsgDepartmentMissing = "Department parameter is required"
)

func respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, dto.NewSuccessResponse(data))
}

func respondError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}

// internalError logs err and answers with the generic 500 envelope so
// store details never reach the client.
func internalError(ctx *gin.Context, log logger.Logger, op string, err error) {
	log.Error(op+" failed",
		"error", err,
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
		"request_id", middleware.GetRequestID(ctx.Request.Context()),
	)
	respondError(ctx, http.StatusInternalServerError, MsgInternalError)
}

// NotFound answers unknown routes with the envelope.
func NotFound(ctx *gin.Context) {
	respondError(ctx, http.StatusNotFound, MsgRouteNotFound)
}
