package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/response"
	"github.com/yourname/moodjournal/internal/service"
	"github.com/yourname/moodjournal/internal/storage"
)

func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString(requestIDKey)
	if status >= http.StatusInternalServerError {
		logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	} else {
		logger.Warnf("[request_id=%s] %s: %v", requestID, msg, err)
	}
	text := msg
	if status < http.StatusInternalServerError {
		text = msg + ": " + err.Error()
	}
	resp := response.Fail(status, text)
	c.JSON(status, resp)
}

// HandleStoreError maps repository and service sentinels onto status codes.
func HandleStoreError(c *gin.Context, logger internal.Logger, err error, msg string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		HandleError(c, logger, err, http.StatusNotFound, msg)
	case errors.Is(err, service.ErrLastActivity):
		HandleError(c, logger, err, http.StatusConflict, msg)
	default:
		HandleError(c, logger, err, http.StatusInternalServerError, msg)
	}
}

func HandleSuccess(c *gin.Context, logger internal.Logger, data interface{}, meta map[string]any) {
	requestID := c.GetString(requestIDKey)
	logger.Debugf("[request_id=%s] Success", requestID)
	c.JSON(http.StatusOK, response.Success(data, meta))
}

func HandleCreated(c *gin.Context, logger internal.Logger, data interface{}) {
	requestID := c.GetString(requestIDKey)
	logger.Debugf("[request_id=%s] Created", requestID)
	c.JSON(http.StatusCreated, response.Success(data, nil))
}

// localNow returns the app clock in the zone named by the tz query
// parameter, or in the server zone when it is absent.
func localNow(c *gin.Context, app App) (time.Time, error) {
	now := app.Now()
	tz := c.Query("tz")
	if tz == "" {
		return now, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, err
	}
	return now.In(loc), nil
}
