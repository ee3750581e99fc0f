package handler

import (
	"event-insights-service/api"
	"event-insights-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*FacetsHandler
	*MobileEventsHandler
	*NotificationHandler
}

func NewAPIHandler(
	facetsUseCase domain.FacetsPerformanceUseCase,
	mobileUseCase domain.MobileAppEventsUseCase,
	notificationUseCase domain.NotificationUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		FacetsHandler:       NewFacetsHandler(facetsUseCase, logger),
		MobileEventsHandler: NewMobileEventsHandler(mobileUseCase, logger),
		NotificationHandler: NewNotificationHandler(notificationUseCase, logger),
	}
}
