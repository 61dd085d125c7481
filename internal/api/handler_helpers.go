package api

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LidiaAlemu/meditrack/internal"
	"github.com/LidiaAlemu/meditrack/internal/response"
)

// storageTimeout bounds every storage round trip; expiry surfaces as a 500
// instead of a hung request.
const storageTimeout = 5 * time.Second

func storageContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storageTimeout)
}

func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	var resp response.APIResponse
	switch status {
	case 400:
		resp = response.BadRequest(msg + ": " + err.Error())
	case 404:
		resp = response.NotFound(msg)
	case 500:
		resp = response.InternalError(msg)
	default:
		resp = response.NewAppError(status, msg)
	}
	c.JSON(status, resp)
}

// HandleStorageError maps the not-found sentinel to 404 and everything else
// to a persistence failure.
func HandleStorageError(c *gin.Context, logger internal.Logger, err error, notFoundMsg, failMsg string) {
	if errors.Is(err, internal.ErrNotFound) {
		HandleError(c, logger, err, 404, notFoundMsg)
		return
	}
	HandleError(c, logger, err, 500, failMsg)
}

func HandleSuccess(c *gin.Context, logger internal.Logger, status int, data interface{}, meta map[string]any) {
	requestID := c.GetString("request_id")
	logger.Debugf("[request_id=%s] %s %s -> %d", requestID, c.Request.Method, c.FullPath(), status)
	c.JSON(status, response.Success(data, meta))
}
