package handler

import (
	"net/http"

	"event-insights-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"operation":  operation,
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
		"user_agent": c.Request().UserAgent(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}

// respondError пишет ошибку в формате {"error": {"code", "message"}}.
func (h *BaseHandler) respondError(c echo.Context, logEntry *logrus.Entry, err error, msg string) error {
	httpErr, ok := domain.ToHTTPError(err)
	if !ok {
		logEntry.WithError(err).Error(msg)
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "Internal error."))
	}

	status := getHTTPStatusCode(err)
	if status >= http.StatusInternalServerError {
		logEntry.WithError(err).Error(msg)
	} else {
		logEntry.WithError(err).Warn(msg)
	}
	return c.JSON(status, toAPIErrorResponse(httpErr))
}
