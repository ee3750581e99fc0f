package handler

import (
	"net/http"

	"event-insights-service/api"
	"event-insights-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// NotificationHandler отдаёт контекст уведомлений по активностям.
type NotificationHandler struct {
	*BaseHandler
	notificationUseCase domain.NotificationUseCase
}

// NewNotificationHandler создает новый экземпляр NotificationHandler.
func NewNotificationHandler(notificationUseCase domain.NotificationUseCase, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         NewBaseHandler(logger),
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) GetOrganizationActivityNotification(c echo.Context, organization string, activityId int64, params api.GetOrganizationActivityNotificationParams) error {
	var teamIDs []int64
	if params.Team != nil {
		teamIDs = *params.Team
	}

	logEntry := h.logRequest(c, "get_activity_notification").WithFields(logrus.Fields{
		"organization": organization,
		"activity_id":  activityId,
		"team_ids":     teamIDs,
	})

	notification, err := h.notificationUseCase.BuildNotification(c.Request().Context(), organization, activityId, teamIDs)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to build notification")
	}

	logEntry.WithField("activity_type", notification.ActivityType).Info("Notification context built")
	return c.JSON(http.StatusOK, toAPINotification(notification))
}
